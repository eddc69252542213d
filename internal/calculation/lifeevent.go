package calculation

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// monthsPerStep is the number of monthly compounding periods folded into one
// trajectory row.
const monthsPerStep = 12

// lifeEventHandler produces the trajectory for one event kind
type lifeEventHandler func(e *Engine, req domain.LifeEventRequest) ([]domain.LifeEventTrajectoryRow, domain.LifeEventStatus, error)

var lifeEventHandlers = map[domain.LifeEventKind]lifeEventHandler{
	domain.KindHavingChild: (*Engine).simulateHavingChild,
	domain.KindBuyingHouse: notImplementedEvent,
	domain.KindSellingCar:  notImplementedEvent,
}

func notImplementedEvent(_ *Engine, _ domain.LifeEventRequest) ([]domain.LifeEventTrajectoryRow, domain.LifeEventStatus, error) {
	return []domain.LifeEventTrajectoryRow{}, domain.LifeEventNotImplemented, nil
}

// bucket is one asset category compounded monthly with and without a
// recurring contribution
type bucket struct {
	monthlyRate  decimal.Decimal
	payment      decimal.Decimal // per month, without contribution
	contribution decimal.Decimal // per month, added on top of payment
}

// bucketState is a bucket's end-of-year balance on both paths
type bucketState struct {
	without decimal.Decimal
	with    decimal.Decimal
}

// step advances one year. Each path depends only on its own prior balance.
func (b bucket) step(prev bucketState) bucketState {
	return bucketState{
		without: finmath.FutureValue(b.monthlyRate, monthsPerStep, b.payment, prev.without),
		with:    finmath.FutureValue(b.monthlyRate, monthsPerStep, b.payment.Add(b.contribution), prev.with),
	}
}

// fold runs the bucket for years steps starting from a balance
func (b bucket) fold(start decimal.Decimal, years int) []bucketState {
	states := make([]bucketState, 0, years)
	prev := bucketState{without: start, with: start}
	for i := 0; i < years; i++ {
		prev = b.step(prev)
		states = append(states, prev)
	}
	return states
}

// simulateHavingChild draws the monthly cost of a child from cash while stock
// and investment keep growing at the market rate.
func (e *Engine) simulateHavingChild(req domain.LifeEventRequest) ([]domain.LifeEventTrajectoryRow, domain.LifeEventStatus, error) {
	a := e.Catalog.ChildEvent
	if a.Years <= 0 {
		return nil, "", fmt.Errorf("child event horizon must be positive, got %d", a.Years)
	}

	totalCost := childCost(a.AnnualExpensesStart, a.AnnualExpensesIncrement, a.Children, a.Interest, a.Years)
	monthlyCost := totalCost.Div(decimal.NewFromInt(int64(a.Years * monthsPerStep)))
	e.Logger.Debugf("having a child: total cost %s over %d years, monthly %s",
		totalCost.StringFixed(2), a.Years, monthlyCost.StringFixed(2))

	cashTotal := SumAssets(FilterAssets(req.Assets, domain.AssetTypeCash))
	stockTotal := SumAssets(FilterAssets(req.Assets, domain.AssetTypeStock))
	investmentTotal := SumAssets(FilterAssets(req.Assets, domain.AssetTypeInvestment))

	bankRate := finmath.MonthlyRate(e.Catalog.BankInterest)
	marketRate := finmath.MonthlyRate(e.Catalog.MarketInterest)

	cash := bucket{monthlyRate: bankRate, payment: monthlyCost.Neg(), contribution: a.CashMonthlyContribution}
	stock := bucket{monthlyRate: marketRate, payment: decimal.Zero, contribution: a.StockMonthlyContribution}
	investment := bucket{monthlyRate: marketRate, payment: decimal.Zero, contribution: a.InvestmentMonthlyContribution}

	cashStates := cash.fold(cashTotal, a.Years)
	stockStates := stock.fold(stockTotal, a.Years)
	var investmentStates []bucketState
	if !investmentTotal.IsZero() {
		investmentStates = investment.fold(investmentTotal, a.Years)
	}

	digits := e.Catalog.RoundingDigit
	cashYearly := a.CashMonthlyContribution.Mul(finmath.MonthsPerYear())
	stockYearly := a.StockMonthlyContribution.Mul(finmath.MonthsPerYear())
	investmentYearly := a.InvestmentMonthlyContribution.Mul(finmath.MonthsPerYear())

	rows := make([]domain.LifeEventTrajectoryRow, a.Years)
	for i := range rows {
		rows[i] = domain.LifeEventTrajectoryRow{
			Year:                  i + 1,
			Cash:                  finmath.Round(cashStates[i].without, digits),
			CashContribution:      finmath.Round(cashYearly, digits),
			CashWithContribution:  finmath.Round(cashStates[i].with, digits),
			Stock:                 finmath.Round(stockStates[i].without, digits),
			StockContribution:     finmath.Round(stockYearly, digits),
			StockWithContribution: finmath.Round(stockStates[i].with, digits),
		}
		if investmentStates != nil {
			rows[i].Investment = finmath.RoundPtr(investmentStates[i].without, digits)
			rows[i].InvestmentContribution = finmath.RoundPtr(investmentYearly, digits)
			rows[i].InvestmentWithContribution = finmath.RoundPtr(investmentStates[i].with, digits)
		}
	}

	return rows, domain.LifeEventSimulated, nil
}
