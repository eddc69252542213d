package calculation

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

var withdrawalRates = struct {
	four, three, two decimal.Decimal
}{
	four:  decimal.NewFromFloat(0.04),
	three: decimal.NewFromFloat(0.03),
	two:   decimal.NewFromFloat(0.02),
}

// ProjectCoastFire runs a savings schedule forward from startingBalance.
// Each year's total is (prior total + contribution) * (1 + yearly return);
// the carried total is never rounded. Withdrawals at 4/3/2 percent are
// discounted one period at initialRate.
func ProjectCoastFire(schedule []domain.CoastFireSavings, initialRate, startingBalance decimal.Decimal, digits int) ([]domain.CoastFireYear, error) {
	if decimal.NewFromInt(1).Add(initialRate).IsZero() {
		return nil, fmt.Errorf("initial interest rate of %s discounts to zero: %w", initialRate.String(), ErrDivisionByZero)
	}

	years := make([]domain.CoastFireYear, 0, len(schedule))
	prior := startingBalance
	for i, s := range schedule {
		total := prior.Add(s.Contribution).Mul(decimal.NewFromInt(1).Add(s.YearlyReturn))
		prior = total

		four := total.Mul(withdrawalRates.four)
		three := total.Mul(withdrawalRates.three)
		two := total.Mul(withdrawalRates.two)

		years = append(years, domain.CoastFireYear{
			Year:              i + 1,
			Contribution:      s.Contribution,
			YearlyReturn:      s.YearlyReturn,
			Total:             finmath.Round(total, digits),
			InitialEarning:    finmath.Round(total.Mul(s.YearlyReturn), digits),
			WithdrawFour:      finmath.Round(four, digits),
			WithdrawThree:     finmath.Round(three, digits),
			WithdrawTwo:       finmath.Round(two, digits),
			PresentValueFour:  finmath.Round(finmath.PresentValue(initialRate, 1, four), digits),
			PresentValueThree: finmath.Round(finmath.PresentValue(initialRate, 1, three), digits),
			PresentValueTwo:   finmath.Round(finmath.PresentValue(initialRate, 1, two), digits),
		})
	}
	return years, nil
}
