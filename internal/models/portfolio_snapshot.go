package models

import (
	"time"

	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PortfolioSnapshot is the total portfolio value recorded for one calendar
// date. Date is stored as midnight UTC and is unique.
type PortfolioSnapshot struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	Date       time.Time       `gorm:"type:date;not null;uniqueIndex" json:"date"`
	TotalValue decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"total_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PortfolioSnapshot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}

// ToDomain converts the row into the value used by history series.
func (p *PortfolioSnapshot) ToDomain() portfolio.Snapshot {
	return portfolio.Snapshot{
		Date:       p.Date.UTC(),
		TotalValue: p.TotalValue,
		UpdatedAt:  p.UpdatedAt,
	}
}
