// Package quote resolves live market prices for tracked symbols and
// normalizes them into the reporting currency.
package quote

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wealthtrack/internal/portfolio"
)

// RawQuote is a price as reported by the market-data provider.
type RawQuote struct {
	Price       decimal.Decimal
	Currency    string
	ObservedAt  time.Time
	DisplayName string
}

// Fetcher fetches a live quote for a symbol.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (RawQuote, error)
}

// CurrencyConverter converts amounts into the reporting currency at the
// current rate.
type CurrencyConverter interface {
	ConvertToReportingCurrency(ctx context.Context, amount decimal.Decimal) decimal.Decimal
}

// Quote is a resolved price in the reporting currency plus the provider's
// metadata.
type Quote struct {
	Symbol      string
	Price       decimal.Decimal // reporting currency
	NativePrice decimal.Decimal
	Currency    string // provider currency
	DisplayName string
	ObservedAt  time.Time
}

// Info returns the presentation metadata of q.
func (q *Quote) Info() *portfolio.PriceInfo {
	return &portfolio.PriceInfo{
		DisplayName: q.DisplayName,
		Currency:    q.Currency,
		NativePrice: q.NativePrice,
		ObservedAt:  q.ObservedAt,
	}
}

// Resolver turns provider quotes into reporting-currency quotes.
type Resolver struct {
	fetcher   Fetcher
	converter CurrencyConverter
	log       *zap.SugaredLogger
}

// NewResolver creates a Resolver.
func NewResolver(fetcher Fetcher, converter CurrencyConverter, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Resolver{fetcher: fetcher, converter: converter, log: log}
}

// Resolve returns the quote for symbol, or nil when the symbol is blank,
// the provider fails, or the provider has no price. A nil quote means the
// holding cannot be valued right now; it is not an error.
//
// Prices already in the reporting currency pass through unchanged. Every
// other currency is converted at the USD to EUR rate. For quotes in a third
// currency this is an approximation.
func (r *Resolver) Resolve(ctx context.Context, symbol string) *Quote {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil
	}

	raw, err := r.fetcher.Fetch(ctx, symbol)
	if err != nil {
		r.log.Warnw("quote unavailable", "symbol", symbol, "error", err)
		return nil
	}
	if !raw.Price.IsPositive() {
		r.log.Warnw("quote has no price", "symbol", symbol)
		return nil
	}

	currency := strings.ToUpper(strings.TrimSpace(raw.Currency))
	price := raw.Price
	if currency != portfolio.ReportingCurrency {
		price = r.converter.ConvertToReportingCurrency(ctx, raw.Price)
	}

	name := raw.DisplayName
	if name == "" {
		name = symbol
	}

	return &Quote{
		Symbol:      symbol,
		Price:       price,
		NativePrice: raw.Price,
		Currency:    currency,
		DisplayName: name,
		ObservedAt:  raw.ObservedAt,
	}
}
