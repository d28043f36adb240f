package portfolio

import "github.com/shopspring/decimal"

var (
	daysPerYear  = decimal.NewFromInt(365)
	daysPerWeek  = decimal.NewFromInt(7)
	daysPerMonth = decimal.NewFromInt(30)
)

// ProfitRates is the expected profit of the fixed-rate part of a portfolio
// over several horizons, in the reporting currency.
type ProfitRates struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

// ProjectProfit projects profit from the current daily rate of every
// fixed-rate holding. Market-tracked holdings never contribute: their
// future return is not knowable from current data.
//
// Each horizon is rounded once from the unrounded daily sum, never by
// scaling the rounded daily figure.
func ProjectProfit(valued []ValuedHolding) ProfitRates {
	daily := decimal.Zero
	for _, v := range valued {
		fr, ok := v.Holding.Instrument.(FixedRate)
		if !ok {
			continue
		}
		daily = daily.Add(fr.InitialInvestment.Mul(v.Holding.Quantity).Mul(fr.AnnualRate).Div(daysPerYear))
	}

	return ProfitRates{
		Daily:   Round(daily),
		Weekly:  Round(daily.Mul(daysPerWeek)),
		Monthly: Round(daily.Mul(daysPerMonth)),
		Annual:  Round(daily.Mul(daysPerYear)),
	}
}
