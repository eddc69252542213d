package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatFV is an independent float64 rendition of the monthly compounding step
func floatFV(annualPercent float64, pmt, pv float64) float64 {
	r := annualPercent / 100 / 12
	f := math.Pow(1+r, 12)
	return pv*f + pmt*(f-1)/r
}

func assertClose(t *testing.T, expected float64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected, got.InexactFloat64(), 0.011, msgAndArgs...)
}

func TestSimulateLifeEvent_HavingChild(t *testing.T) {
	engine := NewEngine(domain.DefaultRateCatalog())
	assets := []domain.Asset{asset("cash", 50000), asset("stock", 20000)}
	liabilities := []domain.Liability{liability("credit card", 1000)}

	res, err := engine.SimulateLifeEvent("having a child", assets, liabilities)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, domain.LifeEventSimulated, res.Status)
	assert.Equal(t, domain.KindHavingChild, res.Kind)
	assert.NoError(t, LifeEventErr(res))
	assert.Equal(t, assets, res.CurrentAssets)
	assert.Equal(t, liabilities, res.CurrentLiabilities)
	require.Len(t, res.Trajectory, 18)

	a := engine.Catalog.ChildEvent
	total := childCost(a.AnnualExpensesStart, a.AnnualExpensesIncrement, a.Children, a.Interest, a.Years)
	monthlyCost := total.InexactFloat64() / (18 * 12)

	first := res.Trajectory[0]
	assert.Equal(t, 1, first.Year)
	assertClose(t, floatFV(2, -monthlyCost, 50000), first.Cash, "cash")
	assertClose(t, floatFV(2, 1000-monthlyCost, 50000), first.CashWithContribution, "cash with contribution")
	assertClose(t, floatFV(7, 0, 20000), first.Stock, "stock")
	assertClose(t, floatFV(7, 500, 20000), first.StockWithContribution, "stock with contribution")
	assert.Equal(t, "12000", first.CashContribution.String())
	assert.Equal(t, "6000", first.StockContribution.String())
	assert.False(t, first.HasInvestment())

	for i, row := range res.Trajectory {
		assert.Equal(t, i+1, row.Year)
		assert.Nil(t, row.Investment)
		assert.Nil(t, row.InvestmentWithContribution)
	}
	last := res.Trajectory[17]
	assert.True(t, last.Cash.LessThan(first.Cash), "the child draws cash down")
	assert.True(t, last.StockWithContribution.GreaterThan(last.Stock))
}

func TestSimulateLifeEvent_HavingChildWithInvestment(t *testing.T) {
	engine := NewEngine(domain.DefaultRateCatalog())
	assets := []domain.Asset{asset("cash", 10000), asset("Investment", 4000), asset("investment", 6000)}

	res, err := engine.SimulateLifeEvent("Having A Child", assets, nil)
	require.NoError(t, err)
	require.Len(t, res.Trajectory, 18)

	first := res.Trajectory[0]
	require.True(t, first.HasInvestment())
	assertClose(t, floatFV(7, 0, 10000), *first.Investment, "investment")
	assertClose(t, floatFV(7, 500, 10000), *first.InvestmentWithContribution, "investment with contribution")
	assert.Equal(t, "6000", first.InvestmentContribution.String())
	assert.True(t, first.Stock.IsZero())
	assert.Nil(t, res.CurrentLiabilities)
}

func TestSimulateLifeEvent_RowsFoldOverPriorRow(t *testing.T) {
	b := bucket{
		monthlyRate:  finmath.MonthlyRate(decimal.NewFromInt(7)),
		payment:      decimal.NewFromInt(-250),
		contribution: decimal.NewFromInt(500),
	}
	states := b.fold(decimal.NewFromInt(10000), 18)
	require.Len(t, states, 18)

	for i := 1; i < len(states); i++ {
		next := b.step(states[i-1])
		assert.True(t, next.with.Equal(states[i].with), "year %d with contribution", i+1)
		assert.True(t, next.without.Equal(states[i].without), "year %d without contribution", i+1)

		// each path depends only on its own prior value
		swapped := b.step(bucketState{without: states[i-1].without, with: decimal.NewFromInt(1)})
		assert.True(t, swapped.without.Equal(states[i].without))
	}
}

func TestSimulateLifeEvent_BucketsAreIndependent(t *testing.T) {
	engine := NewEngine(domain.DefaultRateCatalog())

	small, err := engine.SimulateLifeEvent("having a child", []domain.Asset{asset("cash", 30000), asset("stock", 1)}, nil)
	require.NoError(t, err)
	large, err := engine.SimulateLifeEvent("having a child", []domain.Asset{asset("cash", 30000), asset("stock", 900000)}, nil)
	require.NoError(t, err)

	for i := range small.Trajectory {
		assert.True(t, small.Trajectory[i].Cash.Equal(large.Trajectory[i].Cash))
		assert.True(t, small.Trajectory[i].CashWithContribution.Equal(large.Trajectory[i].CashWithContribution))
	}
}

func TestSimulateLifeEvent_HorizonFollowsCatalog(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	catalog.ChildEvent.Years = 5
	engine := NewEngine(catalog)

	res, err := engine.SimulateLifeEvent("having a child", []domain.Asset{asset("cash", 1000)}, nil)
	require.NoError(t, err)
	assert.Len(t, res.Trajectory, 5)
}

func TestSimulateLifeEvent_NotImplemented(t *testing.T) {
	engine := NewEngine(domain.DefaultRateCatalog())
	assets := []domain.Asset{asset("cash", 1000)}
	liabilities := []domain.Liability{liability("mortgage", 200000)}

	for _, eventType := range []string{"buying a house", "Selling A Car"} {
		t.Run(eventType, func(t *testing.T) {
			res, err := engine.SimulateLifeEvent(eventType, assets, liabilities)
			require.NoError(t, err)
			assert.Equal(t, domain.LifeEventNotImplemented, res.Status)
			assert.NotNil(t, res.Trajectory)
			assert.Empty(t, res.Trajectory)
			assert.Equal(t, assets, res.CurrentAssets)
			assert.Equal(t, liabilities, res.CurrentLiabilities)
			assert.True(t, errors.Is(LifeEventErr(res), ErrUnimplementedLifeEvent))
		})
	}
}

func TestSimulateLifeEvent_Unrecognized(t *testing.T) {
	engine := NewEngine(domain.DefaultRateCatalog())
	payment := decimal.NewFromInt(50)
	assets := []domain.Asset{asset("cash", 1000), asset("stock", 5)}
	liabilities := []domain.Liability{{TypeName: "credit card", Value: decimal.NewFromInt(300), MonthlyPayment: &payment}}

	res, err := engine.SimulateLifeEvent("winning the lottery", assets, liabilities)
	require.NoError(t, err)
	assert.Equal(t, domain.LifeEventUnrecognized, res.Status)
	assert.Equal(t, domain.KindUnknown, res.Kind)
	assert.Empty(t, res.Trajectory)
	assert.Equal(t, assets, res.CurrentAssets)
	assert.Equal(t, liabilities, res.CurrentLiabilities)
	assert.True(t, errors.Is(LifeEventErr(res), ErrUnrecognizedLifeEvent))

	// the echoed snapshot does not alias the input
	res.CurrentAssets[0].TypeName = "changed"
	*res.CurrentLiabilities[0].MonthlyPayment = decimal.NewFromInt(1)
	assert.Equal(t, "cash", assets[0].TypeName)
	assert.Equal(t, "50", payment.String())
}

func TestSimulateLifeEvent_TypeMissingFromCatalog(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	catalog.LifeEventTypes = []string{"buying a house"}
	engine := NewEngine(catalog)

	res, err := engine.SimulateLifeEvent("having a child", []domain.Asset{asset("cash", 1000)}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.LifeEventUnrecognized, res.Status)
	assert.Empty(t, res.Trajectory)
}

func TestSimulateLifeEvent_InvalidHorizon(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	catalog.ChildEvent.Years = 0
	engine := NewEngine(catalog)

	res, err := engine.SimulateLifeEvent("having a child", nil, nil)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestParseLifeEventKind(t *testing.T) {
	assert.Equal(t, domain.KindHavingChild, domain.ParseLifeEventKind("  HAVING a child "))
	assert.Equal(t, domain.KindBuyingHouse, domain.ParseLifeEventKind("buying a house"))
	assert.Equal(t, domain.KindSellingCar, domain.ParseLifeEventKind("selling a car"))
	assert.Equal(t, domain.KindUnknown, domain.ParseLifeEventKind("retiring"))
	assert.Equal(t, "unknown", domain.KindUnknown.String())
}
