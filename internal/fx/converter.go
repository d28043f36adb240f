package fx

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultFallbackRate is substituted when no rate can be fetched.
var DefaultFallbackRate = decimal.RequireFromString("0.92")

// Converter converts USD amounts into the reporting currency. It never
// returns an error: a failed historical fetch falls back to the current
// rate, and a failed current fetch falls back to a fixed rate.
type Converter struct {
	fetcher  RateFetcher
	fallback decimal.Decimal
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewConverter creates a Converter. A non-positive fallbackRate selects
// DefaultFallbackRate.
func NewConverter(fetcher RateFetcher, fallbackRate decimal.Decimal, log *zap.SugaredLogger) *Converter {
	if !fallbackRate.IsPositive() {
		fallbackRate = DefaultFallbackRate
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Converter{fetcher: fetcher, fallback: fallbackRate, log: log, now: time.Now}
}

// FallbackRate returns the fixed rate used when every fetch fails.
func (c *Converter) FallbackRate() decimal.Decimal {
	return c.fallback
}

// GetCurrentExchangeRate returns the live rate, or the fallback rate
// stamped with the present time.
func (c *Converter) GetCurrentExchangeRate(ctx context.Context) ExchangeRate {
	rate, err := c.fetcher.FetchCurrent(ctx)
	if err == nil {
		return rate
	}
	c.log.Warnw("current exchange rate unavailable, using fallback rate",
		"source", SourceFallback,
		"rate", c.fallback.String(),
		"error", err,
	)
	return c.fallbackRate(c.now().UTC())
}

// GetHistoricalExchangeRate returns the rate for date. When the historical
// rate is unavailable it serves the current rate, and when that fails too
// the fallback rate stamped with the requested date.
func (c *Converter) GetHistoricalExchangeRate(ctx context.Context, date time.Time) ExchangeRate {
	rate, err := c.fetcher.FetchHistorical(ctx, date)
	if err == nil {
		return rate
	}
	c.log.Warnw("historical exchange rate unavailable, trying current rate",
		"date", date.Format(dateLayout),
		"error", err,
	)

	rate, err = c.fetcher.FetchCurrent(ctx)
	if err == nil {
		rate.Source = SourceCurrent
		return rate
	}
	c.log.Warnw("current exchange rate unavailable, using fallback rate",
		"date", date.Format(dateLayout),
		"source", SourceFallback,
		"rate", c.fallback.String(),
		"error", err,
	)
	return c.fallbackRate(date)
}

// ConvertToReportingCurrency converts a USD amount at the current rate,
// rounded to cents. Negative amounts scale the same way.
func (c *Converter) ConvertToReportingCurrency(ctx context.Context, amount decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return Apply(amount, c.GetCurrentExchangeRate(ctx).Rate)
}

// ConvertToReportingCurrencyHistorical converts a USD amount at the rate
// in force on date, rounded to cents.
func (c *Converter) ConvertToReportingCurrencyHistorical(ctx context.Context, amount decimal.Decimal, date time.Time) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return Apply(amount, c.GetHistoricalExchangeRate(ctx, date).Rate)
}

func (c *Converter) fallbackRate(stamp time.Time) ExchangeRate {
	return ExchangeRate{
		From:       BaseCurrency,
		To:         QuoteCurrency,
		Rate:       c.fallback,
		ObservedAt: stamp,
		Source:     SourceFallback,
	}
}

// Apply converts amount at rate, rounded to cents half away from zero.
func Apply(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// Invert converts a reporting-currency amount back at rate, rounded to
// cents. Rates are always positive.
func Invert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Div(rate).Round(2)
}
