// Package finmath holds the decimal time-value-of-money primitives shared by the
// projection engine. Signs follow the cash-balance view: a positive present value
// grows, a positive payment adds to the balance and a negative payment draws it down.
package finmath

import (
	"github.com/shopspring/decimal"
)

// WorkingPrecision bounds the scale of intermediate growth factors. It is far
// finer than any output rounding digit, so carried values keep full precision
// for reporting purposes while repeated compounding does not grow unbounded.
const WorkingPrecision int32 = 24

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Hundred returns 100 as a decimal.
func Hundred() decimal.Decimal { return hundred }

// MonthsPerYear returns 12 as a decimal.
func MonthsPerYear() decimal.Decimal { return twelve }

// Round rounds to the given number of decimal places (half away from zero).
func Round(d decimal.Decimal, digits int) decimal.Decimal {
	return d.Round(int32(digits))
}

// RoundPtr rounds a value and returns a pointer to it.
func RoundPtr(d decimal.Decimal, digits int) *decimal.Decimal {
	r := Round(d, digits)
	return &r
}

// PercentToRate converts a percentage (7 for 7%) to a fraction (0.07).
func PercentToRate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// MonthlyRate converts an annual percentage to a per-month fraction.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return PercentToRate(annualPercent).Div(twelve)
}

// GrowthFactor returns (1 + rate)^periods.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods))).Round(WorkingPrecision)
}

// FutureValue returns the balance after periods compounding steps at rate, with
// pmt added at the end of every period.
//
//	FV = pv*(1+rate)^n + pmt*((1+rate)^n - 1)/rate
//
// A zero rate degenerates to pv + pmt*n.
func FutureValue(rate decimal.Decimal, periods int, pmt, pv decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return pv.Add(pmt.Mul(decimal.NewFromInt(int64(periods))))
	}
	factor := GrowthFactor(rate, periods)
	annuity := pmt.Mul(factor.Sub(one)).Div(rate)
	return pv.Mul(factor).Add(annuity).Round(WorkingPrecision)
}

// PresentValue discounts a single future amount back over periods at rate.
// The caller guarantees rate > -1.
func PresentValue(rate decimal.Decimal, periods int, fv decimal.Decimal) decimal.Decimal {
	return fv.Div(GrowthFactor(rate, periods))
}

// Mean returns the arithmetic mean of values, or zero for an empty slice.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return Sum(values).Div(decimal.NewFromInt(int64(len(values))))
}

// Sum adds all values.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
