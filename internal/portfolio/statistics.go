package portfolio

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Statistics summarizes a valued portfolio. All amounts are in the
// reporting currency and rounded to cents.
type Statistics struct {
	TotalValue            decimal.Decimal      `json:"total_value"`
	TotalCostBasis        decimal.Decimal      `json:"total_cost_basis"`
	TotalReturn           decimal.Decimal      `json:"total_return"`
	TotalReturnPercentage decimal.Decimal      `json:"total_return_percentage"`
	Count                 int                  `json:"count"`
	Unpriced              int                  `json:"unpriced"`
	ByKind                map[Kind]KindSummary `json:"by_kind"`
}

// KindSummary contains summary data for a single holding kind.
type KindSummary struct {
	Value     decimal.Decimal `json:"value"`
	CostBasis decimal.Decimal `json:"cost_basis"`
	Count     int             `json:"count"`
}

// Aggregate reduces valued holdings into portfolio statistics.
//
// TotalReturn is derived from the rounded totals so that
// TotalReturn == TotalValue - TotalCostBasis holds exactly. The return
// percentage is zero when there is no cost basis.
func Aggregate(valued []ValuedHolding) Statistics {
	totalValue := decimal.Zero
	totalCost := decimal.Zero
	byKind := make(map[Kind]KindSummary, 2)
	unpriced := 0

	for _, v := range valued {
		cost := v.Holding.Instrument.UnitCostBasis().Mul(v.Holding.Quantity)
		totalValue = totalValue.Add(v.TotalValue)
		totalCost = totalCost.Add(cost)

		kind := v.Holding.Kind()
		s := byKind[kind]
		s.Value = s.Value.Add(v.TotalValue)
		s.CostBasis = s.CostBasis.Add(cost)
		s.Count++
		byKind[kind] = s

		if kind == KindMarketTracked && !v.Priced {
			unpriced++
		}
	}

	for kind, s := range byKind {
		s.Value = Round(s.Value)
		s.CostBasis = Round(s.CostBasis)
		byKind[kind] = s
	}

	stats := Statistics{
		TotalValue:            Round(totalValue),
		TotalCostBasis:        Round(totalCost),
		TotalReturnPercentage: decimal.Zero,
		Count:                 len(valued),
		Unpriced:              unpriced,
		ByKind:                byKind,
	}
	stats.TotalReturn = stats.TotalValue.Sub(stats.TotalCostBasis)
	if stats.TotalCostBasis.IsPositive() {
		stats.TotalReturnPercentage = Round(stats.TotalReturn.Div(stats.TotalCostBasis).Mul(hundred))
	}
	return stats
}
