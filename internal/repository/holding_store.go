// Package repository persists holdings and portfolio snapshots with GORM.
// Stores translate storage failures into application errors; they hold no
// valuation logic.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
)

// HoldingStore reads and writes holdings together with their detail rows.
type HoldingStore struct {
	db *gorm.DB
}

// NewHoldingStore creates a HoldingStore.
func NewHoldingStore(db *gorm.DB) *HoldingStore {
	return &HoldingStore{db: db}
}

func (s *HoldingStore) withDetails(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("MarketDetail").Preload("FixedRateDetail")
}

// List returns every holding with its detail, oldest first.
func (s *HoldingStore) List(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.withDetails(ctx).Order("created_at ASC, id ASC").Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// ListPage returns one page of holdings, oldest first.
func (s *HoldingStore) ListPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.Holding{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var holdings []models.Holding
	if err := s.withDetails(ctx).Order("created_at ASC, id ASC").Scopes(pagination.Paginate(page)).Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(holdings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Get returns one holding with its detail.
func (s *HoldingStore) Get(ctx context.Context, id string) (*models.Holding, error) {
	var holding models.Holding
	if err := s.withDetails(ctx).Where("id = ?", id).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// Create inserts a holding and its detail in one transaction.
func (s *HoldingStore) Create(ctx context.Context, holding *models.Holding) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(holding).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Update writes the parent columns and the detail row in one transaction.
// The kind column is never updated.
func (s *HoldingStore) Update(ctx context.Context, holding *models.Holding) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(holding).Select("name", "quantity", "updated_at").Updates(holding)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrHoldingNotFound
		}

		switch {
		case holding.MarketDetail != nil:
			holding.MarketDetail.HoldingID = holding.ID
			return tx.Save(holding.MarketDetail).Error
		case holding.FixedRateDetail != nil:
			holding.FixedRateDetail.HoldingID = holding.ID
			return tx.Save(holding.FixedRateDetail).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			return apperrors.ErrHoldingNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Delete removes a holding and its detail rows. Detail rows are deleted
// explicitly as well, since SQLite enforces the cascade only when foreign
// keys are switched on.
func (s *HoldingStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("holding_id = ?", id).Delete(&models.MarketTrackedDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("holding_id = ?", id).Delete(&models.FixedRateDetail{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Holding{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrHoldingNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			return apperrors.ErrHoldingNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
