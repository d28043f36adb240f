// Package fx provides USD to EUR exchange rates and the conversion of
// amounts into the reporting currency. Rate fetch failures never surface
// as errors from the Converter; they degrade to the current rate and then
// to a fixed fallback rate.
package fx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// BaseCurrency is the currency every fetched rate converts from.
	BaseCurrency = "USD"
	// QuoteCurrency is the reporting currency every rate converts to.
	QuoteCurrency = "EUR"
)

// Source records where an ExchangeRate came from.
type Source string

const (
	SourceLive       Source = "live"
	SourceHistorical Source = "historical"
	SourceCurrent    Source = "current" // current rate served for a historical request
	SourceFallback   Source = "fallback"
)

// ErrHistoricalUnsupported is returned by fetchers that only know the
// current rate.
var ErrHistoricalUnsupported = errors.New("fx: historical rates not supported")

// ExchangeRate is a rate observation. It is never persisted.
type ExchangeRate struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Rate       decimal.Decimal `json:"rate"`
	ObservedAt time.Time       `json:"observed_at"`
	Source     Source          `json:"source"`
}

// RateFetcher fetches USD to EUR rates from an external provider.
type RateFetcher interface {
	FetchCurrent(ctx context.Context) (ExchangeRate, error)
	FetchHistorical(ctx context.Context, date time.Time) (ExchangeRate, error)
}

// newRate builds a USD to EUR rate, rejecting non-positive values.
func newRate(rate float64, observedAt time.Time, source Source) (ExchangeRate, error) {
	if rate <= 0 {
		return ExchangeRate{}, fmt.Errorf("fx: invalid rate %f", rate)
	}
	return ExchangeRate{
		From:       BaseCurrency,
		To:         QuoteCurrency,
		Rate:       decimal.NewFromFloat(rate),
		ObservedAt: observedAt,
		Source:     source,
	}, nil
}

// Sources combines one fetcher for current rates with another for
// historical rates.
type Sources struct {
	Current    RateFetcher
	Historical RateFetcher
}

// FetchCurrent delegates to the current-rate fetcher.
func (s Sources) FetchCurrent(ctx context.Context) (ExchangeRate, error) {
	return s.Current.FetchCurrent(ctx)
}

// FetchHistorical delegates to the historical-rate fetcher.
func (s Sources) FetchHistorical(ctx context.Context, date time.Time) (ExchangeRate, error) {
	return s.Historical.FetchHistorical(ctx, date)
}
