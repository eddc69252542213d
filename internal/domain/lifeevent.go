package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LifeEventKind is the closed set of life events the simulator knows about
type LifeEventKind int

const (
	KindUnknown LifeEventKind = iota
	KindHavingChild
	KindBuyingHouse
	KindSellingCar
)

var lifeEventKindNames = map[LifeEventKind]string{
	KindHavingChild: "having a child",
	KindBuyingHouse: "buying a house",
	KindSellingCar:  "selling a car",
}

// String returns the canonical event type name
func (k LifeEventKind) String() string {
	if name, ok := lifeEventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseLifeEventKind maps a free-form event type to its kind, ignoring case and
// surrounding whitespace. Anything else is KindUnknown.
func ParseLifeEventKind(s string) LifeEventKind {
	n := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range lifeEventKindNames {
		if name == n {
			return kind
		}
	}
	return KindUnknown
}

// LifeEventStatus describes what the simulator did with a request
type LifeEventStatus string

const (
	LifeEventSimulated      LifeEventStatus = "simulated"
	LifeEventNotImplemented LifeEventStatus = "not_implemented"
	LifeEventUnrecognized   LifeEventStatus = "unrecognized"
)

// LifeEventRequest is the input of a life event simulation
type LifeEventRequest struct {
	Type        string      `yaml:"type" json:"type"`
	Assets      []Asset     `yaml:"assets" json:"assets"`
	Liabilities []Liability `yaml:"liabilities" json:"liabilities"`
}

// LifeEventTrajectoryRow is one elapsed year of a life event simulation.
// Investment columns are nil when the snapshot holds no investment.
type LifeEventTrajectoryRow struct {
	Year                       int              `yaml:"year" json:"year"`
	Cash                       decimal.Decimal  `yaml:"cash" json:"cash"`
	CashContribution           decimal.Decimal  `yaml:"cash_contribution" json:"cashContribution"`
	CashWithContribution       decimal.Decimal  `yaml:"cash_with_contribution" json:"cashWithContributions"`
	Stock                      decimal.Decimal  `yaml:"stock" json:"stock"`
	StockContribution          decimal.Decimal  `yaml:"stock_contribution" json:"stockContribution"`
	StockWithContribution      decimal.Decimal  `yaml:"stock_with_contribution" json:"stockWithContributions"`
	Investment                 *decimal.Decimal `yaml:"investment,omitempty" json:"investment,omitempty"`
	InvestmentContribution     *decimal.Decimal `yaml:"investment_contribution,omitempty" json:"investmentContribution,omitempty"`
	InvestmentWithContribution *decimal.Decimal `yaml:"investment_with_contribution,omitempty" json:"investmentWithContributions,omitempty"`
}

// HasInvestment reports whether the investment bucket is populated
func (r LifeEventTrajectoryRow) HasInvestment() bool {
	return r.Investment != nil
}

// LifeEventResult echoes the snapshot alongside the simulated trajectory
type LifeEventResult struct {
	Type               string                   `yaml:"type" json:"type"`
	Kind               LifeEventKind            `yaml:"-" json:"-"`
	Status             LifeEventStatus          `yaml:"status" json:"status"`
	CurrentAssets      []Asset                  `yaml:"current_assets" json:"currentAssets"`
	CurrentLiabilities []Liability              `yaml:"current_liabilities" json:"currentLiabilities"`
	Trajectory         []LifeEventTrajectoryRow `yaml:"trajectory" json:"event"`
}
