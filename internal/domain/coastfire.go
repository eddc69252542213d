package domain

import (
	"github.com/shopspring/decimal"
)

// CoastFireSavings is one configured year of a Coast FIRE schedule.
// YearlyReturn is a fraction (0.07 for 7%).
type CoastFireSavings struct {
	Contribution decimal.Decimal `yaml:"contribution" json:"contribution"`
	YearlyReturn decimal.Decimal `yaml:"yearly_return" json:"yearlyReturn"`
}

// CoastFireRequest is the input of a Coast FIRE projection. Nil rate and balance
// fall back to the catalog defaults.
type CoastFireRequest struct {
	Savings             []CoastFireSavings `yaml:"savings" json:"savings"`
	InitialInterestRate *decimal.Decimal   `yaml:"initial_interest_rate,omitempty" json:"initialInterestRate,omitempty"`
	CurrentBalance      *decimal.Decimal   `yaml:"current_balance,omitempty" json:"currentBalance,omitempty"`
}

// CoastFireYear is one projected year of a Coast FIRE schedule
type CoastFireYear struct {
	Year              int             `yaml:"year" json:"year"`
	Contribution      decimal.Decimal `yaml:"contribution" json:"contribution"`
	YearlyReturn      decimal.Decimal `yaml:"yearly_return" json:"yearlyReturn"`
	Total             decimal.Decimal `yaml:"total" json:"total"`
	InitialEarning    decimal.Decimal `yaml:"initial_earning" json:"initialEarning"`
	WithdrawFour      decimal.Decimal `yaml:"withdraw_four" json:"withdrawFour"`
	WithdrawThree     decimal.Decimal `yaml:"withdraw_three" json:"withdrawThree"`
	WithdrawTwo       decimal.Decimal `yaml:"withdraw_two" json:"withdrawTwo"`
	PresentValueFour  decimal.Decimal `yaml:"present_value_four" json:"presentValueFour"`
	PresentValueThree decimal.Decimal `yaml:"present_value_three" json:"presentValueThree"`
	PresentValueTwo   decimal.Decimal `yaml:"present_value_two" json:"presentValueTwo"`
}

// ChildCostRequest parameterizes the cost-of-raising-children model. Empty
// Children or Interests fall back to the catalog defaults.
type ChildCostRequest struct {
	AnnualExpensesStart     decimal.Decimal   `yaml:"annual_expenses_start" json:"annualExpensesStart"`
	AnnualExpensesIncrement decimal.Decimal   `yaml:"annual_expenses_increment" json:"annualExpensesIncrement"`
	Children                []int             `yaml:"children" json:"children"`
	Interests               []decimal.Decimal `yaml:"interests" json:"interests"`
	Years                   int               `yaml:"years" json:"years"`
}

// InterestCost is the accumulated cost under one interest assumption
type InterestCost struct {
	Interest decimal.Decimal `yaml:"interest" json:"interest"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
}

// ChildCost is the cost of raising a number of children over a horizon
type ChildCost struct {
	Children int            `yaml:"children" json:"children"`
	Years    int            `yaml:"years" json:"years"`
	Costs    []InterestCost `yaml:"cost" json:"cost"`
}
