package output

import (
	"github.com/aiof/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportKind names the section a report carries
type ReportKind string

const (
	KindAnalyze        ReportKind = "analyze"
	KindAssetsFV       ReportKind = "assets-fv"
	KindDebtToIncome   ReportKind = "debt-to-income"
	KindLifeEvent      ReportKind = "life-event"
	KindLifeEventTypes ReportKind = "life-event-types"
	KindCoastFire      ReportKind = "coast-fire"
	KindChildCost      ReportKind = "children-cost"
	KindCatalog        ReportKind = "catalog"
)

// Report wraps the result of one engine operation for formatting. Exactly one
// section matching Kind is populated.
type Report struct {
	Kind           ReportKind
	Analyze        *domain.AnalyzeResult
	AssetsFV       []domain.AssetFutureValue
	DebtToIncome   *decimal.Decimal
	LifeEvent      *domain.LifeEventResult
	LifeEventTypes []string
	CoastFire      []domain.CoastFireYear
	ChildCost      []domain.ChildCost
	Catalog        *domain.RateCatalog
}

func NewAnalyzeReport(r *domain.AnalyzeResult) *Report {
	return &Report{Kind: KindAnalyze, Analyze: r}
}

func NewAssetsFVReport(points []domain.AssetFutureValue) *Report {
	return &Report{Kind: KindAssetsFV, AssetsFV: points}
}

func NewDebtToIncomeReport(ratio decimal.Decimal) *Report {
	return &Report{Kind: KindDebtToIncome, DebtToIncome: &ratio}
}

func NewLifeEventReport(r *domain.LifeEventResult) *Report {
	return &Report{Kind: KindLifeEvent, LifeEvent: r}
}

func NewLifeEventTypesReport(types []string) *Report {
	return &Report{Kind: KindLifeEventTypes, LifeEventTypes: types}
}

func NewCoastFireReport(years []domain.CoastFireYear) *Report {
	return &Report{Kind: KindCoastFire, CoastFire: years}
}

func NewChildCostReport(costs []domain.ChildCost) *Report {
	return &Report{Kind: KindChildCost, ChildCost: costs}
}

func NewCatalogReport(c *domain.RateCatalog) *Report {
	return &Report{Kind: KindCatalog, Catalog: c}
}

// debtToIncomePayload is the serialized form of a debt-to-income report
type debtToIncomePayload struct {
	DebtToIncomeRatio decimal.Decimal `json:"debtToIncomeRatio" yaml:"debt_to_income_ratio"`
}

// Payload returns the populated section, the value serialized by the
// structured formatters
func (r *Report) Payload() any {
	switch r.Kind {
	case KindAnalyze:
		return r.Analyze
	case KindAssetsFV:
		return r.AssetsFV
	case KindDebtToIncome:
		if r.DebtToIncome == nil {
			return nil
		}
		return debtToIncomePayload{DebtToIncomeRatio: *r.DebtToIncome}
	case KindLifeEvent:
		return r.LifeEvent
	case KindLifeEventTypes:
		return r.LifeEventTypes
	case KindCoastFire:
		return r.CoastFire
	case KindChildCost:
		return r.ChildCost
	case KindCatalog:
		return r.Catalog
	default:
		return nil
	}
}
