package calculation

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// LiquidityRatio compares cash on hand with credit card debt. At most one of
// the returned pointers is non-nil; both are nil when neither side dominates
// (both zero, or equal). Results are rounded to digits.
//
// When debt exceeds cash the ratio is cash/cc*100. legacy restores the
// historical value, which divided cash by itself and always reported 100.
func LiquidityRatio(cash, cc decimal.Decimal, digits int, legacy bool) (cashToCc, ccToCash *decimal.Decimal) {
	hundred := finmath.Hundred()

	switch {
	case cash.IsPositive() && cc.IsZero():
		return finmath.RoundPtr(hundred, digits), nil
	case cc.IsPositive() && cash.IsZero():
		return nil, finmath.RoundPtr(hundred, digits)
	case cash.IsPositive() && cc.IsPositive() && cash.GreaterThan(cc):
		return finmath.RoundPtr(cc.Div(cash).Mul(hundred), digits), nil
	case cash.IsPositive() && cc.IsPositive() && cash.LessThan(cc):
		if legacy {
			return nil, finmath.RoundPtr(cash.Div(cash).Mul(hundred), digits)
		}
		return nil, finmath.RoundPtr(cash.Div(cc).Mul(hundred), digits)
	default:
		return nil, nil
	}
}

// DebtToIncomeRatio returns annualized qualifying debt payments as a percentage
// of annual income. A liability qualifies when its type is listed in the
// catalog and it carries a stated or derivable monthly payment. No qualifying
// liability yields zero.
func DebtToIncomeRatio(catalog domain.RateCatalog, income decimal.Decimal, liabilities []domain.Liability) (decimal.Decimal, error) {
	if !income.IsPositive() {
		return decimal.Zero, fmt.Errorf("income must be positive, got %s: %w", income.String(), ErrDivisionByZero)
	}

	total := decimal.Zero
	qualifying := 0
	for _, l := range liabilities {
		if !catalog.IsDebtToIncomeType(l.TypeName) || !l.HasUsablePayment() {
			continue
		}
		total = total.Add(l.EffectiveMonthlyPayment())
		qualifying++
	}
	if qualifying == 0 {
		return decimal.Zero, nil
	}

	ratio := total.Mul(finmath.MonthsPerYear()).Div(income).Mul(finmath.Hundred())
	return finmath.Round(ratio, catalog.RoundingDigit), nil
}
