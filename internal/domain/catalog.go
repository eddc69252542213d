package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateCatalog is the read-only configuration every computation runs against.
// Interest rates are percentages (7 for 7%). Pass it by value or treat it as
// immutable once handed to an engine.
type RateCatalog struct {
	RoundingDigit         int             `yaml:"rounding_digit" json:"roundingDigit" env:"AIOF_ROUNDING_DIGIT"`
	BankInterest          decimal.Decimal `yaml:"bank_interest" json:"bankInterest" env:"AIOF_BANK_INTEREST"`
	MarketInterest        decimal.Decimal `yaml:"market_interest" json:"marketInterest" env:"AIOF_MARKET_INTEREST"`
	Horizons              []int           `yaml:"horizons" json:"horizons" env:"AIOF_HORIZONS" envSeparator:","`
	ReferenceAnnualIncome decimal.Decimal `yaml:"reference_annual_income" json:"referenceAnnualIncome" env:"AIOF_REFERENCE_INCOME"`

	// DebtToIncomeLiabilityTypes lists the liability types counted toward debt-to-income
	DebtToIncomeLiabilityTypes []string `yaml:"debt_to_income_liability_types" json:"debtToIncomeLiabilityTypes"`
	LifeEventTypes             []string `yaml:"life_event_types" json:"lifeEventTypes"`

	// LegacyLiquidityRatio restores the historical cc-to-cash value of 100 when
	// credit card debt exceeds cash.
	LegacyLiquidityRatio bool `yaml:"legacy_liquidity_ratio" json:"legacyLiquidityRatio" env:"AIOF_LEGACY_LIQUIDITY_RATIO"`

	ChildEvent ChildEventAssumptions `yaml:"child_event" json:"childEvent"`
	ChildCost  ChildCostDefaults     `yaml:"child_cost" json:"childCost"`
	CoastFire  CoastFireDefaults     `yaml:"coast_fire" json:"coastFire"`
}

// ChildEventAssumptions drives the "having a child" simulation
type ChildEventAssumptions struct {
	AnnualExpensesStart           decimal.Decimal `yaml:"annual_expenses_start" json:"annualExpensesStart"`
	AnnualExpensesIncrement       decimal.Decimal `yaml:"annual_expenses_increment" json:"annualExpensesIncrement"`
	Children                      int             `yaml:"children" json:"children"`
	Interest                      decimal.Decimal `yaml:"interest" json:"interest"`
	Years                         int             `yaml:"years" json:"years"`
	CashMonthlyContribution       decimal.Decimal `yaml:"cash_monthly_contribution" json:"cashMonthlyContribution"`
	StockMonthlyContribution      decimal.Decimal `yaml:"stock_monthly_contribution" json:"stockMonthlyContribution"`
	InvestmentMonthlyContribution decimal.Decimal `yaml:"investment_monthly_contribution" json:"investmentMonthlyContribution"`
}

// ChildCostDefaults are used when a cost-of-raising-children request leaves
// fields unset
type ChildCostDefaults struct {
	AnnualExpensesStart     decimal.Decimal   `yaml:"annual_expenses_start" json:"annualExpensesStart"`
	AnnualExpensesIncrement decimal.Decimal   `yaml:"annual_expenses_increment" json:"annualExpensesIncrement"`
	Children                []int             `yaml:"children" json:"children"`
	Interests               []decimal.Decimal `yaml:"interests" json:"interests"`
	Years                   int               `yaml:"years" json:"years"`
}

// CoastFireDefaults are used when a Coast FIRE request omits rate or balance.
// InitialInterestRate is a fraction.
type CoastFireDefaults struct {
	InitialInterestRate decimal.Decimal `yaml:"initial_interest_rate" json:"initialInterestRate"`
	CurrentBalance      decimal.Decimal `yaml:"current_balance" json:"currentBalance"`
}

// DefaultRateCatalog returns the catalog the service ships with
func DefaultRateCatalog() RateCatalog {
	return RateCatalog{
		RoundingDigit:         2,
		BankInterest:          decimal.NewFromInt(2),
		MarketInterest:        decimal.NewFromInt(7),
		Horizons:              []int{1, 5, 10, 15, 20},
		ReferenceAnnualIncome: decimal.NewFromInt(150000),
		DebtToIncomeLiabilityTypes: []string{
			"credit card",
			"personal loan",
			"student loan",
			"auto loan",
			"car loan",
			"mortgage",
		},
		LifeEventTypes: []string{
			KindHavingChild.String(),
			KindBuyingHouse.String(),
			KindSellingCar.String(),
		},
		ChildEvent: ChildEventAssumptions{
			AnnualExpensesStart:           decimal.NewFromInt(10000),
			AnnualExpensesIncrement:       decimal.NewFromInt(2000),
			Children:                      1,
			Interest:                      decimal.NewFromInt(2),
			Years:                         18,
			CashMonthlyContribution:       decimal.NewFromInt(1000),
			StockMonthlyContribution:      decimal.NewFromInt(500),
			InvestmentMonthlyContribution: decimal.NewFromInt(500),
		},
		ChildCost: ChildCostDefaults{
			AnnualExpensesStart:     decimal.NewFromInt(12000),
			AnnualExpensesIncrement: decimal.NewFromInt(500),
			Children:                []int{1, 2, 3, 4},
			Interests: []decimal.Decimal{
				decimal.NewFromInt(2),
				decimal.NewFromInt(4),
				decimal.NewFromInt(6),
				decimal.NewFromInt(8),
			},
			Years: 18,
		},
		CoastFire: CoastFireDefaults{
			InitialInterestRate: decimal.NewFromFloat(0.02),
			CurrentBalance:      decimal.NewFromInt(100000),
		},
	}
}

// Clone returns a deep copy so the caller can hand out a catalog without
// sharing slices
func (c RateCatalog) Clone() RateCatalog {
	out := c
	out.Horizons = append([]int(nil), c.Horizons...)
	out.DebtToIncomeLiabilityTypes = append([]string(nil), c.DebtToIncomeLiabilityTypes...)
	out.LifeEventTypes = append([]string(nil), c.LifeEventTypes...)
	out.ChildCost.Children = append([]int(nil), c.ChildCost.Children...)
	out.ChildCost.Interests = append([]decimal.Decimal(nil), c.ChildCost.Interests...)
	return out
}

// IsDebtToIncomeType reports whether a liability type counts toward debt-to-income
func (c RateCatalog) IsDebtToIncomeType(typeName string) bool {
	return containsFold(c.DebtToIncomeLiabilityTypes, typeName)
}

// IsListedLifeEvent reports whether an event type appears in the catalog
func (c RateCatalog) IsListedLifeEvent(eventType string) bool {
	return containsFold(c.LifeEventTypes, eventType)
}

// InterestFor returns the growth assumption for an asset type: bank interest for
// cash, market interest for stock and zero otherwise
func (c RateCatalog) InterestFor(typeName string) decimal.Decimal {
	switch strings.ToLower(strings.TrimSpace(typeName)) {
	case AssetTypeCash:
		return c.BankInterest
	case AssetTypeStock:
		return c.MarketInterest
	default:
		return decimal.Zero
	}
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), s) {
			return true
		}
	}
	return false
}
