package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"wealthtrack/internal/fx"
	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/quote"
	"wealthtrack/internal/valuation"
)

// staticResolver prices symbols from a fixed EUR table.
type staticResolver map[string]string

func (r staticResolver) Resolve(_ context.Context, symbol string) *quote.Quote {
	p, ok := r[symbol]
	if !ok {
		return nil
	}
	return &quote.Quote{Symbol: symbol, Price: decimal.RequireFromString(p), NativePrice: decimal.RequireFromString(p), Currency: "EUR", DisplayName: symbol}
}

func newTestValuer(prices map[string]string) *valuation.Valuer {
	return valuation.NewValuer(staticResolver(prices), 2, nil)
}

// failingValuer always fails, to check that nothing is written.
type failingValuer struct{}

func (failingValuer) ValueAll(context.Context, []portfolio.Holding, time.Time) ([]portfolio.ValuedHolding, error) {
	return nil, errors.New("valuation failed")
}

// fixedRates serves a constant rate and records the requested date.
type fixedRates struct {
	requested *time.Time
}

func (r *fixedRates) GetCurrentExchangeRate(context.Context) fx.ExchangeRate {
	return fx.ExchangeRate{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.93"), Source: fx.SourceLive}
}

func (r *fixedRates) GetHistoricalExchangeRate(_ context.Context, date time.Time) fx.ExchangeRate {
	r.requested = &date
	return fx.ExchangeRate{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.91"), ObservedAt: date, Source: fx.SourceHistorical}
}

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
