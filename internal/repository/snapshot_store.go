package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
)

// SnapshotStore reads and upserts date-keyed portfolio snapshots.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a SnapshotStore.
func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Latest returns the most recent snapshot.
func (s *SnapshotStore) Latest(ctx context.Context) (*models.PortfolioSnapshot, error) {
	var snap models.PortfolioSnapshot
	if err := s.db.WithContext(ctx).Order("date DESC").First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snap, nil
}

// ListSince returns snapshots dated on or after since, ascending by date.
func (s *SnapshotStore) ListSince(ctx context.Context, since time.Time) ([]models.PortfolioSnapshot, error) {
	var snaps []models.PortfolioSnapshot
	if err := s.db.WithContext(ctx).Where("date >= ?", since).Order("date ASC").Find(&snaps).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snaps, nil
}

// Upsert writes the total for date in a single statement, replacing the
// value of an existing snapshot for the same date. date must already be a
// calendar-day key (midnight UTC). Concurrent writers for one date resolve
// last-write-wins.
func (s *SnapshotStore) Upsert(ctx context.Context, date time.Time, total decimal.Decimal) (*models.PortfolioSnapshot, error) {
	db := s.db.WithContext(ctx)

	snap := models.PortfolioSnapshot{Date: date, TotalValue: total}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.PortfolioSnapshot
	if err := db.Where("date = ?", date).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}
