package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wealthtrack/internal/fx"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/portfolio"
)

// HoldingRepository is the persistence contract for holdings and their
// detail rows.
type HoldingRepository interface {
	List(ctx context.Context) ([]models.Holding, error)
	ListPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error)
	Get(ctx context.Context, id string) (*models.Holding, error)
	Create(ctx context.Context, holding *models.Holding) error
	Update(ctx context.Context, holding *models.Holding) error
	Delete(ctx context.Context, id string) error
}

// SnapshotRepository is the persistence contract for date-keyed snapshots.
type SnapshotRepository interface {
	Latest(ctx context.Context) (*models.PortfolioSnapshot, error)
	ListSince(ctx context.Context, since time.Time) ([]models.PortfolioSnapshot, error)
	Upsert(ctx context.Context, date time.Time, total decimal.Decimal) (*models.PortfolioSnapshot, error)
}

// HoldingValuer values a set of holdings at an evaluation time.
type HoldingValuer interface {
	ValueAll(ctx context.Context, holdings []portfolio.Holding, at time.Time) ([]portfolio.ValuedHolding, error)
}

// RateProvider exposes exchange rates with their provenance.
type RateProvider interface {
	GetCurrentExchangeRate(ctx context.Context) fx.ExchangeRate
	GetHistoricalExchangeRate(ctx context.Context, date time.Time) fx.ExchangeRate
}

// HoldingServicer defines the contract for holding CRUD.
type HoldingServicer interface {
	CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error)
	GetHolding(ctx context.Context, id string) (*models.Holding, error)
	ListHoldings(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error)
	UpdateHolding(ctx context.Context, id string, in HoldingInput) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
}

// PortfolioServicer defines the read side of the portfolio. Everything is
// recomputed on each call.
type PortfolioServicer interface {
	GetStatistics(ctx context.Context) (*StatisticsReport, error)
	GetProfitRates(ctx context.Context) (*portfolio.ProfitRates, error)
	GetEvolution(ctx context.Context, days int) ([]portfolio.Point, error)
	GetDailyChanges(ctx context.Context, days int) ([]portfolio.Point, error)
	GetMonthlyWealth(ctx context.Context, months int) ([]portfolio.MonthPoint, error)
	GetLatestSnapshot(ctx context.Context) (*models.PortfolioSnapshot, error)
	GetExchangeRate(ctx context.Context, date *time.Time) fx.ExchangeRate
}

// SnapshotServicer records the daily portfolio snapshot.
type SnapshotServicer interface {
	RecordDailySnapshot(ctx context.Context, holdings []portfolio.Holding) (*SnapshotResult, error)
	TriggerSnapshot(ctx context.Context) (*SnapshotResult, error)
}
