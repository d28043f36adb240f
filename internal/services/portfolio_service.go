package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/fx"
	"wealthtrack/internal/models"
	"wealthtrack/internal/portfolio"
)

const (
	maxHistoryDays   = 366
	maxHistoryMonths = 120
)

// PortfolioOptions configures the read-side defaults.
type PortfolioOptions struct {
	HistoryDays   int
	HistoryMonths int
	Location      *time.Location // calendar-day boundary
}

// HoldingValuation is one valued holding as presented to callers.
type HoldingValuation struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Kind       portfolio.Kind       `json:"kind"`
	Symbol     string               `json:"symbol,omitempty"`
	Quantity   decimal.Decimal      `json:"quantity"`
	UnitValue  decimal.Decimal      `json:"unit_value"`
	TotalValue decimal.Decimal      `json:"total_value"`
	CostBasis  decimal.Decimal      `json:"cost_basis"`
	Priced     bool                 `json:"priced"`
	Price      *portfolio.PriceInfo `json:"price,omitempty"`
}

// StatisticsReport is the valued portfolio together with its statistics.
type StatisticsReport struct {
	Holdings    []HoldingValuation   `json:"holdings"`
	Statistics  portfolio.Statistics `json:"statistics"`
	EvaluatedAt time.Time            `json:"evaluated_at"`
}

// portfolioService computes statistics, projections and history series.
type portfolioService struct {
	holdings  HoldingRepository
	snapshots SnapshotRepository
	valuer    HoldingValuer
	rates     RateProvider
	opts      PortfolioOptions
	now       func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(holdings HoldingRepository, snapshots SnapshotRepository, valuer HoldingValuer, rates RateProvider, opts PortfolioOptions) PortfolioServicer {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = portfolio.DefaultHistoryDays
	}
	if opts.HistoryMonths <= 0 {
		opts.HistoryMonths = 12
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &portfolioService{
		holdings:  holdings,
		snapshots: snapshots,
		valuer:    valuer,
		rates:     rates,
		opts:      opts,
		now:       time.Now,
	}
}

// GetStatistics values every holding and aggregates the result.
func (s *portfolioService) GetStatistics(ctx context.Context) (*StatisticsReport, error) {
	at := s.now().In(s.opts.Location)
	valued, err := valueStored(ctx, s.holdings, s.valuer, at)
	if err != nil {
		return nil, err
	}

	report := &StatisticsReport{
		Holdings:    make([]HoldingValuation, 0, len(valued)),
		Statistics:  portfolio.Aggregate(valued),
		EvaluatedAt: at.UTC(),
	}
	for _, v := range valued {
		report.Holdings = append(report.Holdings, presentValuation(v))
	}
	return report, nil
}

// GetProfitRates projects profit from the fixed-rate holdings.
func (s *portfolioService) GetProfitRates(ctx context.Context) (*portfolio.ProfitRates, error) {
	valued, err := valueStored(ctx, s.holdings, s.valuer, s.now().In(s.opts.Location))
	if err != nil {
		return nil, err
	}
	rates := portfolio.ProjectProfit(valued)
	return &rates, nil
}

// GetEvolution returns the snapshot values of the last days days. Zero
// selects the configured default.
func (s *portfolioService) GetEvolution(ctx context.Context, days int) ([]portfolio.Point, error) {
	days, err := s.historyDays(days)
	if err != nil {
		return nil, err
	}

	since := portfolio.WindowStart(s.today(), days)
	rows, err := s.snapshots.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return portfolio.Evolution(toSnapshots(rows), since), nil
}

// GetDailyChanges returns the day-over-day differences of the evolution
// series.
func (s *portfolioService) GetDailyChanges(ctx context.Context, days int) ([]portfolio.Point, error) {
	points, err := s.GetEvolution(ctx, days)
	if err != nil {
		return nil, err
	}
	return portfolio.DailyChanges(points), nil
}

// GetMonthlyWealth returns one value per calendar month for the last
// months months, including the current one.
func (s *portfolioService) GetMonthlyWealth(ctx context.Context, months int) ([]portfolio.MonthPoint, error) {
	if months == 0 {
		months = s.opts.HistoryMonths
	}
	if months < 1 || months > maxHistoryMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("months must be between 1 and %d", maxHistoryMonths))
	}

	today := s.today()
	since := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	rows, err := s.snapshots.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return portfolio.MonthlyWealth(toSnapshots(rows)), nil
}

// GetLatestSnapshot returns the most recent snapshot.
func (s *portfolioService) GetLatestSnapshot(ctx context.Context) (*models.PortfolioSnapshot, error) {
	return s.snapshots.Latest(ctx)
}

// GetExchangeRate returns the current rate, or the rate for date when
// given, with its provenance.
func (s *portfolioService) GetExchangeRate(ctx context.Context, date *time.Time) fx.ExchangeRate {
	if date == nil {
		return s.rates.GetCurrentExchangeRate(ctx)
	}
	return s.rates.GetHistoricalExchangeRate(ctx, *date)
}

func (s *portfolioService) historyDays(days int) (int, error) {
	if days == 0 {
		days = s.opts.HistoryDays
	}
	if days < 1 || days > maxHistoryDays {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("days must be between 1 and %d", maxHistoryDays))
	}
	return days, nil
}

func (s *portfolioService) today() time.Time {
	return portfolio.DayStart(s.now(), s.opts.Location)
}

// valueStored loads all holdings and values them at at.
func valueStored(ctx context.Context, store HoldingRepository, valuer HoldingValuer, at time.Time) ([]portfolio.ValuedHolding, error) {
	rows, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	holdings, err := models.HoldingsToDomain(rows)
	if err != nil {
		return nil, err
	}
	return valuer.ValueAll(ctx, holdings, at)
}

func toSnapshots(rows []models.PortfolioSnapshot) []portfolio.Snapshot {
	out := make([]portfolio.Snapshot, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

func presentValuation(v portfolio.ValuedHolding) HoldingValuation {
	h := v.Holding
	out := HoldingValuation{
		ID:         h.ID,
		Name:       h.Name,
		Kind:       h.Kind(),
		Quantity:   h.Quantity,
		UnitValue:  v.UnitValue,
		TotalValue: portfolio.Round(v.TotalValue),
		CostBasis:  portfolio.Round(h.Instrument.UnitCostBasis().Mul(h.Quantity)),
		Priced:     v.Priced,
		Price:      v.Price,
	}
	if m, ok := h.Instrument.(portfolio.MarketTracked); ok {
		out.Symbol = m.Symbol
	}
	return out
}
