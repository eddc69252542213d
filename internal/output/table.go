package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Table is the tabular view of a report used by the CSV and console formatters
type Table struct {
	Header []string
	Rows   [][]string
}

// Table builds the tabular section of the report. Amounts use two decimals.
func (r *Report) Table() (Table, error) {
	switch r.Kind {
	case KindAnalyze:
		if r.Analyze == nil {
			return Table{}, errEmptySection(r.Kind)
		}
		return futureValueTable(r.Analyze.Analytics.AssetsFv), nil
	case KindAssetsFV:
		return futureValueTable(r.AssetsFV), nil
	case KindDebtToIncome:
		if r.DebtToIncome == nil {
			return Table{}, errEmptySection(r.Kind)
		}
		return Table{Header: []string{"DebtToIncomeRatio"}, Rows: [][]string{{r.DebtToIncome.StringFixed(2)}}}, nil
	case KindLifeEvent:
		if r.LifeEvent == nil {
			return Table{}, errEmptySection(r.Kind)
		}
		return lifeEventTable(r.LifeEvent.Trajectory), nil
	case KindLifeEventTypes:
		t := Table{Header: []string{"Type"}}
		for _, name := range r.LifeEventTypes {
			t.Rows = append(t.Rows, []string{name})
		}
		return t, nil
	case KindCoastFire:
		return coastFireTable(r.CoastFire), nil
	case KindChildCost:
		return childCostTable(r.ChildCost), nil
	case KindCatalog:
		if r.Catalog == nil {
			return Table{}, errEmptySection(r.Kind)
		}
		return catalogTable(r.Catalog), nil
	default:
		return Table{}, fmt.Errorf("unknown report kind %q", r.Kind)
	}
}

func errEmptySection(kind ReportKind) error {
	return fmt.Errorf("%s report has no data", kind)
}

func futureValueTable(points []domain.AssetFutureValue) Table {
	t := Table{Header: []string{"Year", "Type", "Interest", "PresentValue", "FutureValue"}}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{
			intToString(p.Year),
			p.TypeName,
			p.InterestRate.String(),
			p.PresentValue.StringFixed(2),
			p.FutureValue.StringFixed(2),
		})
	}
	return t
}

func lifeEventTable(rows []domain.LifeEventTrajectoryRow) Table {
	t := Table{Header: []string{
		"Year",
		"Cash", "CashContribution", "CashWithContributions",
		"Stock", "StockContribution", "StockWithContributions",
		"Investment", "InvestmentContribution", "InvestmentWithContributions",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			intToString(row.Year),
			row.Cash.StringFixed(2),
			row.CashContribution.StringFixed(2),
			row.CashWithContribution.StringFixed(2),
			row.Stock.StringFixed(2),
			row.StockContribution.StringFixed(2),
			row.StockWithContribution.StringFixed(2),
			optionalFixed(row.Investment),
			optionalFixed(row.InvestmentContribution),
			optionalFixed(row.InvestmentWithContribution),
		})
	}
	return t
}

func coastFireTable(years []domain.CoastFireYear) Table {
	t := Table{Header: []string{
		"Year", "Contribution", "YearlyReturn", "Total", "InitialEarning",
		"WithdrawFour", "WithdrawThree", "WithdrawTwo",
		"PresentValueFour", "PresentValueThree", "PresentValueTwo",
	}}
	for _, y := range years {
		t.Rows = append(t.Rows, []string{
			intToString(y.Year),
			y.Contribution.StringFixed(2),
			y.YearlyReturn.String(),
			y.Total.StringFixed(2),
			y.InitialEarning.StringFixed(2),
			y.WithdrawFour.StringFixed(2),
			y.WithdrawThree.StringFixed(2),
			y.WithdrawTwo.StringFixed(2),
			y.PresentValueFour.StringFixed(2),
			y.PresentValueThree.StringFixed(2),
			y.PresentValueTwo.StringFixed(2),
		})
	}
	return t
}

func childCostTable(costs []domain.ChildCost) Table {
	t := Table{Header: []string{"Children", "Years", "Interest", "Cost"}}
	for _, c := range costs {
		for _, ic := range c.Costs {
			t.Rows = append(t.Rows, []string{
				intToString(c.Children),
				intToString(c.Years),
				ic.Interest.String(),
				ic.Value.StringFixed(2),
			})
		}
	}
	return t
}

func catalogTable(c *domain.RateCatalog) Table {
	horizons := make([]string, len(c.Horizons))
	for i, h := range c.Horizons {
		horizons[i] = intToString(h)
	}
	return Table{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"rounding_digit", intToString(c.RoundingDigit)},
			{"bank_interest", c.BankInterest.String()},
			{"market_interest", c.MarketInterest.String()},
			{"horizons", strings.Join(horizons, ",")},
			{"reference_annual_income", c.ReferenceAnnualIncome.StringFixed(2)},
			{"debt_to_income_liability_types", strings.Join(c.DebtToIncomeLiabilityTypes, ",")},
			{"life_event_types", strings.Join(c.LifeEventTypes, ",")},
			{"legacy_liquidity_ratio", boolToString(c.LegacyLiquidityRatio)},
		},
	}
}

func optionalFixed(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
