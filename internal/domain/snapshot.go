package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Recognized asset and liability type names. Matching is case-insensitive.
const (
	AssetTypeCash       = "cash"
	AssetTypeStock      = "stock"
	AssetTypeInvestment = "investment"

	LiabilityTypeCreditCard = "credit card"
)

// Asset is a single holding in a household snapshot
type Asset struct {
	TypeName string          `yaml:"type_name" json:"typeName"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
}

// IsType reports whether the asset's type matches name, ignoring case
func (a Asset) IsType(name string) bool {
	return strings.EqualFold(strings.TrimSpace(a.TypeName), name)
}

// Liability is a single debt in a household snapshot
type Liability struct {
	TypeName       string           `yaml:"type_name" json:"typeName"`
	Value          decimal.Decimal  `yaml:"value" json:"value"`
	MonthlyPayment *decimal.Decimal `yaml:"monthly_payment,omitempty" json:"monthlyPayment,omitempty"`
	Years          *int             `yaml:"years,omitempty" json:"years,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Liability so that an
// absent monthly payment stays nil instead of decoding to zero
func (l *Liability) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		TypeName       string  `yaml:"type_name"`
		Value          string  `yaml:"value"`
		MonthlyPayment *string `yaml:"monthly_payment,omitempty"`
		Years          *int    `yaml:"years,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	l.TypeName = aux.TypeName
	l.Years = aux.Years
	l.Value = decimal.Zero
	if aux.Value != "" {
		v, err := decimal.NewFromString(aux.Value)
		if err != nil {
			return err
		}
		l.Value = v
	}

	l.MonthlyPayment = nil
	if aux.MonthlyPayment != nil {
		v, err := decimal.NewFromString(*aux.MonthlyPayment)
		if err != nil {
			return err
		}
		l.MonthlyPayment = &v
	}

	return nil
}

// IsType reports whether the liability's type matches name, ignoring case
func (l Liability) IsType(name string) bool {
	return strings.EqualFold(strings.TrimSpace(l.TypeName), name)
}

// derivesPayment is true when the monthly payment must be derived from the term
func (l Liability) derivesPayment() bool {
	noPayment := l.MonthlyPayment == nil || l.MonthlyPayment.IsZero()
	return noPayment && l.Years != nil && *l.Years > 0
}

// HasUsablePayment reports whether the liability carries a monthly payment,
// either stated or derivable from its value and term
func (l Liability) HasUsablePayment() bool {
	return l.MonthlyPayment != nil || l.derivesPayment()
}

// EffectiveMonthlyPayment returns value/years/12 when no payment is stated and a
// positive term is present; otherwise the stated payment (zero when absent).
func (l Liability) EffectiveMonthlyPayment() decimal.Decimal {
	if l.derivesPayment() {
		return l.Value.Div(decimal.NewFromInt(int64(*l.Years))).Div(decimal.NewFromInt(12))
	}
	if l.MonthlyPayment == nil {
		return decimal.Zero
	}
	return *l.MonthlyPayment
}

// SnapshotSummary holds the totals and means over a snapshot
type SnapshotSummary struct {
	AssetsTotal      decimal.Decimal `yaml:"assets_total" json:"assetsTotal"`
	AssetsMean       decimal.Decimal `yaml:"assets_mean" json:"assetsMean"`
	LiabilitiesTotal decimal.Decimal `yaml:"liabilities_total" json:"liabilitiesTotal"`
	LiabilitiesMean  decimal.Decimal `yaml:"liabilities_mean" json:"liabilitiesMean"`
	Diff             decimal.Decimal `yaml:"diff" json:"diff"`
}

// Round returns a copy with every field rounded to digits
func (s SnapshotSummary) Round(digits int) SnapshotSummary {
	d := int32(digits)
	return SnapshotSummary{
		AssetsTotal:      s.AssetsTotal.Round(d),
		AssetsMean:       s.AssetsMean.Round(d),
		LiabilitiesTotal: s.LiabilitiesTotal.Round(d),
		LiabilitiesMean:  s.LiabilitiesMean.Round(d),
		Diff:             s.Diff.Round(d),
	}
}

// CloneAssets returns a copy of assets that shares no backing array
func CloneAssets(assets []Asset) []Asset {
	if assets == nil {
		return nil
	}
	return append([]Asset{}, assets...)
}

// CloneLiabilities returns a deep copy of liabilities
func CloneLiabilities(liabilities []Liability) []Liability {
	if liabilities == nil {
		return nil
	}
	out := make([]Liability, len(liabilities))
	for i, l := range liabilities {
		out[i] = l
		if l.MonthlyPayment != nil {
			p := *l.MonthlyPayment
			out[i].MonthlyPayment = &p
		}
		if l.Years != nil {
			y := *l.Years
			out[i].Years = &y
		}
	}
	return out
}
