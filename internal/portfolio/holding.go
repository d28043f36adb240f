// Package portfolio holds the domain model of tracked holdings and the pure
// reductions over them: portfolio statistics, historical series and
// profit-rate projections. Nothing in here performs I/O.
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single currency every value is normalized to.
const ReportingCurrency = "EUR"

// Kind discriminates the two holding variants.
type Kind string

const (
	KindMarketTracked Kind = "MARKET_TRACKED"
	KindFixedRate     Kind = "FIXED_RATE"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindMarketTracked || k == KindFixedRate
}

// Instrument is the kind-specific detail carried by a Holding.
// MarketTracked and FixedRate are its only implementations.
type Instrument interface {
	Kind() Kind
	// UnitCostBasis is what one unit originally cost, in the reporting currency.
	UnitCostBasis() decimal.Decimal
	sealed()
}

// MarketTracked is a holding priced from an external market quote.
type MarketTracked struct {
	Symbol        string
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

func (MarketTracked) Kind() Kind                       { return KindMarketTracked }
func (m MarketTracked) UnitCostBasis() decimal.Decimal { return m.PurchasePrice }
func (MarketTracked) sealed()                          {}

// FixedRate is a synthetic instrument valued by daily-compounded interest.
// AnnualRate is a decimal fraction: 0.055 means 5.5%.
type FixedRate struct {
	AnnualRate        decimal.Decimal
	InitialInvestment decimal.Decimal
	InvestmentDate    time.Time
}

func (FixedRate) Kind() Kind                       { return KindFixedRate }
func (f FixedRate) UnitCostBasis() decimal.Decimal { return f.InitialInvestment }
func (FixedRate) sealed()                          {}

// Holding is a tracked position.
type Holding struct {
	ID         string
	Name       string
	Quantity   decimal.Decimal
	Instrument Instrument
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Kind returns the kind of the holding's instrument.
func (h Holding) Kind() Kind {
	if h.Instrument == nil {
		return ""
	}
	return h.Instrument.Kind()
}

// PriceInfo is presentation metadata attached to a market-priced holding.
type PriceInfo struct {
	DisplayName string          `json:"display_name"`
	Currency    string          `json:"currency"`
	NativePrice decimal.Decimal `json:"native_price"`
	ObservedAt  time.Time       `json:"observed_at"`
}

// ValuedHolding is a holding together with its current value.
// Priced is false when a market-tracked holding could not be quoted; its
// unit value is then zero.
type ValuedHolding struct {
	Holding    Holding
	UnitValue  decimal.Decimal
	TotalValue decimal.Decimal
	Priced     bool
	Price      *PriceInfo
}

// Round rounds a monetary amount to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
