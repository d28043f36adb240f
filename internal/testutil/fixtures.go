package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"wealthtrack/internal/models"
	"wealthtrack/internal/portfolio"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestMarketHolding creates a market-tracked holding for symbol.
func CreateTestMarketHolding(t *testing.T, db *gorm.DB, symbol string, quantity, purchasePrice string) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		Kind:     portfolio.KindMarketTracked,
		Name:     fmt.Sprintf("Market holding %d", nextID()),
		Quantity: decimal.RequireFromString(quantity),
		MarketDetail: &models.MarketTrackedDetail{
			Symbol:        symbol,
			PurchasePrice: decimal.RequireFromString(purchasePrice),
			PurchaseDate:  Date(2024, 1, 2),
		},
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test market holding: %v", err)
	}
	return holding
}

// CreateTestFixedRateHolding creates a fixed-rate holding with quantity 1.
func CreateTestFixedRateHolding(t *testing.T, db *gorm.DB, principal, annualRate string, investedOn time.Time) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		Kind:     portfolio.KindFixedRate,
		Name:     fmt.Sprintf("Deposit %d", nextID()),
		Quantity: decimal.NewFromInt(1),
		FixedRateDetail: &models.FixedRateDetail{
			AnnualRate:        decimal.RequireFromString(annualRate),
			InitialInvestment: decimal.RequireFromString(principal),
			InvestmentDate:    investedOn,
		},
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test fixed-rate holding: %v", err)
	}
	return holding
}

// CreateTestSnapshot creates a snapshot for date with the given total.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, date time.Time, total string) *models.PortfolioSnapshot {
	t.Helper()

	snap := &models.PortfolioSnapshot{
		Date:       date,
		TotalValue: decimal.RequireFromString(total),
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
