package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wealthtrack/internal/models"
	"wealthtrack/internal/portfolio"
)

// Snapshot result statuses. Both are successful outcomes.
const (
	SnapshotStatusRecorded   = "recorded"
	SnapshotStatusNoHoldings = "no_holdings"
)

// SnapshotResult is the outcome of one snapshot run.
type SnapshotResult struct {
	Status     string                    `json:"status"`
	Message    string                    `json:"message,omitempty"`
	Snapshot   *models.PortfolioSnapshot `json:"snapshot,omitempty"`
	Statistics *portfolio.Statistics     `json:"statistics,omitempty"`
}

// snapshotService values the portfolio and upserts today's snapshot.
type snapshotService struct {
	holdings  HoldingRepository
	snapshots SnapshotRepository
	valuer    HoldingValuer
	loc       *time.Location
	log       *zap.SugaredLogger
	now       func() time.Time
}

// NewSnapshotService creates a new SnapshotServicer. loc sets the calendar
// day a snapshot is keyed by.
func NewSnapshotService(holdings HoldingRepository, snapshots SnapshotRepository, valuer HoldingValuer, loc *time.Location, log *zap.SugaredLogger) SnapshotServicer {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &snapshotService{
		holdings:  holdings,
		snapshots: snapshots,
		valuer:    valuer,
		loc:       loc,
		log:       log,
		now:       time.Now,
	}
}

// TriggerSnapshot loads every holding and records today's snapshot.
func (s *snapshotService) TriggerSnapshot(ctx context.Context) (*SnapshotResult, error) {
	rows, err := s.holdings.List(ctx)
	if err != nil {
		return nil, err
	}
	holdings, err := models.HoldingsToDomain(rows)
	if err != nil {
		return nil, err
	}
	return s.RecordDailySnapshot(ctx, holdings)
}

// RecordDailySnapshot values holdings, aggregates them and upserts the
// snapshot for today. Nothing is written when there are no holdings or
// when valuation fails.
func (s *snapshotService) RecordDailySnapshot(ctx context.Context, holdings []portfolio.Holding) (*SnapshotResult, error) {
	if len(holdings) == 0 {
		s.log.Infow("no holdings, snapshot skipped")
		return &SnapshotResult{
			Status:  SnapshotStatusNoHoldings,
			Message: "No holdings to snapshot; nothing recorded",
		}, nil
	}

	now := s.now()
	valued, err := s.valuer.ValueAll(ctx, holdings, now.In(s.loc))
	if err != nil {
		return nil, err
	}
	stats := portfolio.Aggregate(valued)

	date := portfolio.DayStart(now, s.loc)
	snap, err := s.snapshots.Upsert(ctx, date, stats.TotalValue)
	if err != nil {
		return nil, err
	}

	s.log.Infow("snapshot recorded",
		"date", date.Format("2006-01-02"),
		"total_value", stats.TotalValue.String(),
		"holdings", stats.Count,
		"unpriced", stats.Unpriced,
	)

	return &SnapshotResult{
		Status:     SnapshotStatusRecorded,
		Snapshot:   snap,
		Statistics: &stats,
	}, nil
}
