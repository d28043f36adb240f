package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wealthtrack/internal/yahoo"
)

// YahooFetcher fetches quotes from the Yahoo Finance chart endpoint. Symbols
// are passed as Yahoo tickers, e.g. "AAPL" or "VWCE.DE".
type YahooFetcher struct {
	chart *yahoo.Client
	now   func() time.Time
}

// NewYahooFetcher creates a quote fetcher on top of a chart client.
func NewYahooFetcher(chart *yahoo.Client) *YahooFetcher {
	return &YahooFetcher{chart: chart, now: time.Now}
}

// Fetch returns the regular market price for symbol.
func (f *YahooFetcher) Fetch(ctx context.Context, symbol string) (RawQuote, error) {
	meta, err := f.chart.Chart(ctx, symbol)
	if err != nil {
		return RawQuote{}, fmt.Errorf("fetching quote for %s: %w", symbol, err)
	}
	if meta.RegularMarketPrice <= 0 {
		return RawQuote{}, fmt.Errorf("no price for %s", symbol)
	}
	return RawQuote{
		Price:       decimal.NewFromFloat(meta.RegularMarketPrice),
		Currency:    meta.Currency,
		ObservedAt:  meta.ObservedAt(f.now().UTC()),
		DisplayName: meta.DisplayName(),
	}, nil
}
