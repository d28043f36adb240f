// Package interest values fixed-rate instruments by daily compounding.
package interest

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	apperrors "wealthtrack/internal/errors"
)

// DaysPerYear is the day-count convention used for the daily rate.
const DaysPerYear = 365

var rateFloor = decimal.NewFromInt(-1)

// ElapsedDays returns the number of calendar days from investment to
// evaluation. The investment date is read as a UTC calendar date, the way
// it is stored; the evaluation date is read in its own location, so callers
// pass it in the zone that defines "today". It is negative when evaluation
// precedes investment.
func ElapsedDays(investmentDate, evaluationDate time.Time) int {
	iy, im, id := investmentDate.UTC().Date()
	ey, em, ed := evaluationDate.Date()
	from := time.Date(iy, im, id, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Validate checks the inputs of CurrentValue in the order the errors are
// reported: principal, then rate, then dates.
func Validate(principal, annualRate decimal.Decimal, investmentDate, evaluationDate time.Time) error {
	if !principal.IsPositive() {
		return apperrors.ErrInvalidPrincipal
	}
	if annualRate.LessThan(rateFloor) {
		return apperrors.ErrRateBelowFloor
	}
	if ElapsedDays(investmentDate, evaluationDate) < 0 {
		return apperrors.ErrFutureInvestmentDate
	}
	return nil
}

// CurrentValue returns principal * (1 + annualRate/365)^days rounded to
// cents, where days is the number of whole days elapsed since the
// investment date. On the investment day itself the principal is returned
// unchanged.
func CurrentValue(principal, annualRate decimal.Decimal, investmentDate, evaluationDate time.Time) (decimal.Decimal, error) {
	if err := Validate(principal, annualRate, investmentDate, evaluationDate); err != nil {
		return decimal.Zero, err
	}

	days := ElapsedDays(investmentDate, evaluationDate)
	if days == 0 {
		return principal, nil
	}

	daily := annualRate.InexactFloat64() / DaysPerYear
	factor := math.Pow(1+daily, float64(days))
	return principal.Mul(decimal.NewFromFloat(factor)).Round(2), nil
}

// HistoricalConverter converts an amount into the reporting currency at the
// rate in force on a given date.
type HistoricalConverter interface {
	ConvertToReportingCurrencyHistorical(ctx context.Context, amount decimal.Decimal, date time.Time) decimal.Decimal
}

// CurrentValueFromForeign values an investment whose principal was recorded
// in a foreign currency. The principal is converted at the rate of the
// investment date before compounding. Inputs are validated before any
// conversion is attempted.
func CurrentValueFromForeign(ctx context.Context, conv HistoricalConverter, principal, annualRate decimal.Decimal, investmentDate, evaluationDate time.Time) (decimal.Decimal, error) {
	if err := Validate(principal, annualRate, investmentDate, evaluationDate); err != nil {
		return decimal.Zero, err
	}
	converted := conv.ConvertToReportingCurrencyHistorical(ctx, principal, investmentDate)
	return CurrentValue(converted, annualRate, investmentDate, evaluationDate)
}
