package models

import (
	"fmt"
	"time"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/portfolio"

	"github.com/shopspring/decimal"
)

// Holding is a tracked position. Exactly one of MarketDetail and
// FixedRateDetail is set, matching Kind.
type Holding struct {
	Base
	Kind     portfolio.Kind  `gorm:"type:varchar(20);not null;index" json:"kind"`
	Name     string          `gorm:"not null" json:"name"`
	Quantity decimal.Decimal `gorm:"type:numeric(28,10);not null" json:"quantity"`

	// Relationships
	MarketDetail    *MarketTrackedDetail `gorm:"foreignKey:HoldingID;constraint:OnDelete:CASCADE" json:"market_detail,omitempty"`
	FixedRateDetail *FixedRateDetail     `gorm:"foreignKey:HoldingID;constraint:OnDelete:CASCADE" json:"fixed_rate_detail,omitempty"`
}

// MarketTrackedDetail carries the quote symbol and purchase data of a
// MARKET_TRACKED holding.
type MarketTrackedDetail struct {
	HoldingID     string          `gorm:"type:uuid;primaryKey" json:"-"`
	Symbol        string          `gorm:"type:varchar(32);not null;index" json:"symbol"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"purchase_price"`
	PurchaseDate  time.Time       `gorm:"type:date;not null" json:"purchase_date"`
}

// FixedRateDetail carries the terms of a FIXED_RATE holding. AnnualRate is
// a decimal fraction.
type FixedRateDetail struct {
	HoldingID         string          `gorm:"type:uuid;primaryKey" json:"-"`
	AnnualRate        decimal.Decimal `gorm:"type:numeric(12,8);not null" json:"annual_rate"`
	InitialInvestment decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"initial_investment"`
	InvestmentDate    time.Time       `gorm:"type:date;not null" json:"investment_date"`
}

// ToDomain converts the row and its detail into a portfolio.Holding.
func (h *Holding) ToDomain() (portfolio.Holding, error) {
	out := portfolio.Holding{
		ID:        h.ID,
		Name:      h.Name,
		Quantity:  h.Quantity,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}

	switch h.Kind {
	case portfolio.KindMarketTracked:
		if h.MarketDetail == nil {
			return portfolio.Holding{}, apperrors.Wrap(apperrors.ErrMissingDetail, fmt.Errorf("holding %s", h.ID))
		}
		out.Instrument = portfolio.MarketTracked{
			Symbol:        h.MarketDetail.Symbol,
			PurchasePrice: h.MarketDetail.PurchasePrice,
			PurchaseDate:  h.MarketDetail.PurchaseDate.UTC(),
		}
	case portfolio.KindFixedRate:
		if h.FixedRateDetail == nil {
			return portfolio.Holding{}, apperrors.Wrap(apperrors.ErrMissingDetail, fmt.Errorf("holding %s", h.ID))
		}
		out.Instrument = portfolio.FixedRate{
			AnnualRate:        h.FixedRateDetail.AnnualRate,
			InitialInvestment: h.FixedRateDetail.InitialInvestment,
			InvestmentDate:    h.FixedRateDetail.InvestmentDate.UTC(),
		}
	default:
		return portfolio.Holding{}, apperrors.Wrap(apperrors.ErrInvalidHoldingKind, fmt.Errorf("holding %s has kind %q", h.ID, h.Kind))
	}
	return out, nil
}

// HoldingsToDomain converts a list of rows, failing on the first row
// without a valid detail.
func HoldingsToDomain(rows []Holding) ([]portfolio.Holding, error) {
	out := make([]portfolio.Holding, 0, len(rows))
	for i := range rows {
		h, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
