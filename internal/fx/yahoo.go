package fx

import (
	"context"
	"fmt"
	"time"

	"wealthtrack/internal/yahoo"
)

// YahooTicker is the Yahoo Finance forex pair quoting EUR per USD.
const YahooTicker = BaseCurrency + QuoteCurrency + "=X"

// YahooRates fetches the live USD to EUR rate from the Yahoo chart endpoint.
type YahooRates struct {
	chart *yahoo.Client
	now   func() time.Time
}

// NewYahooRates creates a current-rate fetcher on top of a chart client.
func NewYahooRates(chart *yahoo.Client) *YahooRates {
	return &YahooRates{chart: chart, now: time.Now}
}

// FetchCurrent returns the latest market rate for USDEUR=X.
func (y *YahooRates) FetchCurrent(ctx context.Context) (ExchangeRate, error) {
	meta, err := y.chart.Chart(ctx, YahooTicker)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("fetching %s: %w", YahooTicker, err)
	}
	return newRate(meta.RegularMarketPrice, meta.ObservedAt(y.now().UTC()), SourceLive)
}

// FetchHistorical is not offered by the chart endpoint at daily granularity.
func (y *YahooRates) FetchHistorical(context.Context, time.Time) (ExchangeRate, error) {
	return ExchangeRate{}, ErrHistoricalUnsupported
}
