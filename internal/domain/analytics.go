package domain

import (
	"github.com/shopspring/decimal"
)

// AssetFutureValue is one (horizon year, asset) projection point
type AssetFutureValue struct {
	Year         int             `yaml:"year" json:"year"`
	TypeName     string          `yaml:"type_name" json:"typeName"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest"`
	PresentValue decimal.Decimal `yaml:"present_value" json:"pv"`
	FutureValue  decimal.Decimal `yaml:"future_value" json:"fv"`
}

// AnalyticsResult holds the ratio analytics over a snapshot.
// CashToCcRatio and CcToCashRatio are nil when not applicable; at most one is set.
type AnalyticsResult struct {
	CashToCcRatio     *decimal.Decimal   `yaml:"cash_to_cc_ratio,omitempty" json:"cashToCcRatio"`
	CcToCashRatio     *decimal.Decimal   `yaml:"cc_to_cash_ratio,omitempty" json:"ccToCashRatio"`
	Diff              decimal.Decimal    `yaml:"diff" json:"diff"`
	DebtToIncomeRatio decimal.Decimal    `yaml:"debt_to_income_ratio" json:"debtToIncomeRatio"`
	AssetsFv          []AssetFutureValue `yaml:"assets_fv" json:"assetsFv"`
}

// AnalyzeResult is the full response of an analyze call
type AnalyzeResult struct {
	Assets          []decimal.Decimal `yaml:"assets" json:"assets"`
	Liabilities     []decimal.Decimal `yaml:"liabilities" json:"liabilities"`
	SnapshotSummary `yaml:",inline"`
	Analytics       AnalyticsResult `yaml:"analytics" json:"analytics"`
}

// SnapshotRequest carries a household snapshot
type SnapshotRequest struct {
	Assets      []Asset     `yaml:"assets" json:"assets"`
	Liabilities []Liability `yaml:"liabilities" json:"liabilities"`
}

// DebtToIncomeRequest is the input of a debt-to-income calculation
type DebtToIncomeRequest struct {
	Income      decimal.Decimal `yaml:"income" json:"income"`
	Liabilities []Liability     `yaml:"liabilities" json:"liabilities"`
}
