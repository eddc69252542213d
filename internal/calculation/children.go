package calculation

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// childCost accumulates the spending on children over years. Year y spends
// (start + increment*y) per child; the running total grows at interest percent
// each year as money that would otherwise have been invested.
func childCost(start, increment decimal.Decimal, children int, interest decimal.Decimal, years int) decimal.Decimal {
	rate := finmath.PercentToRate(interest)
	growth := decimal.NewFromInt(1).Add(rate)
	count := decimal.NewFromInt(int64(children))

	value := decimal.Zero
	for y := 0; y < years; y++ {
		spend := start.Add(increment.Mul(decimal.NewFromInt(int64(y)))).Mul(count)
		value = value.Add(spend).Mul(growth)
	}
	return value
}

// CostOfRaisingChildren evaluates the child cost model for every requested
// number of children under every interest assumption. Values are rounded to digits.
func CostOfRaisingChildren(req domain.ChildCostRequest, digits int) ([]domain.ChildCost, error) {
	if req.Years <= 0 {
		return nil, fmt.Errorf("years must be positive, got %d: %w", req.Years, ErrEmptyInput)
	}
	if len(req.Children) == 0 {
		return nil, fmt.Errorf("no children counts provided: %w", ErrEmptyInput)
	}
	if len(req.Interests) == 0 {
		return nil, fmt.Errorf("no interest assumptions provided: %w", ErrEmptyInput)
	}

	out := make([]domain.ChildCost, 0, len(req.Children))
	for _, children := range req.Children {
		if children <= 0 {
			return nil, fmt.Errorf("children count must be positive, got %d", children)
		}
		cost := domain.ChildCost{
			Children: children,
			Years:    req.Years,
			Costs:    make([]domain.InterestCost, 0, len(req.Interests)),
		}
		for _, interest := range req.Interests {
			value := childCost(req.AnnualExpensesStart, req.AnnualExpensesIncrement, children, interest, req.Years)
			cost.Costs = append(cost.Costs, domain.InterestCost{
				Interest: interest,
				Value:    finmath.Round(value, digits),
			})
		}
		out = append(out, cost)
	}
	return out, nil
}
