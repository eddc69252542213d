package calculation

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// Engine composes the snapshot analytics, projection and simulation
// components against a fixed rate catalog. An Engine holds no per-call state
// and is safe for concurrent use once configured.
type Engine struct {
	Catalog domain.RateCatalog
	Logger  Logger
}

// NewEngine creates an engine over a private copy of catalog
func NewEngine(catalog domain.RateCatalog) *Engine {
	return &Engine{
		Catalog: catalog.Clone(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Analyze computes totals, liquidity and debt-to-income ratios and the future
// value of every asset. Debt-to-income uses the catalog's reference income.
func (e *Engine) Analyze(assets []domain.Asset, liabilities []domain.Liability) (*domain.AnalyzeResult, error) {
	summary, err := Aggregate(assets, liabilities)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	digits := e.Catalog.RoundingDigit
	cash := SumAssets(FilterAssets(assets, domain.AssetTypeCash))
	cc := SumLiabilities(FilterLiabilities(liabilities, domain.LiabilityTypeCreditCard))
	cashToCc, ccToCash := LiquidityRatio(cash, cc, digits, e.Catalog.LegacyLiquidityRatio)

	dti, err := DebtToIncomeRatio(e.Catalog, e.Catalog.ReferenceAnnualIncome, liabilities)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	e.Logger.Debugf("analyze: %d assets, %d liabilities, diff %s", len(assets), len(liabilities), summary.Diff.StringFixed(2))

	return &domain.AnalyzeResult{
		Assets:          AssetValues(assets),
		Liabilities:     LiabilityValues(liabilities),
		SnapshotSummary: summary.Round(digits),
		Analytics: domain.AnalyticsResult{
			CashToCcRatio:     cashToCc,
			CcToCashRatio:     ccToCash,
			Diff:              finmath.Round(summary.Diff, digits),
			DebtToIncomeRatio: dti,
			AssetsFv:          e.AssetsFutureValue(assets),
		},
	}, nil
}

// AssetsFutureValue projects each asset across the catalog horizons
func (e *Engine) AssetsFutureValue(assets []domain.Asset) []domain.AssetFutureValue {
	return ProjectAssetsFutureValue(e.Catalog, assets)
}

// DebtToIncomeRatio computes the debt-to-income percentage for an annual income
func (e *Engine) DebtToIncomeRatio(income decimal.Decimal, liabilities []domain.Liability) (decimal.Decimal, error) {
	ratio, err := DebtToIncomeRatio(e.Catalog, income, liabilities)
	if err != nil {
		return decimal.Zero, fmt.Errorf("debt to income: %w", err)
	}
	return ratio, nil
}

// LifeEventTypes returns a copy of the recognized life event types
func (e *Engine) LifeEventTypes() []string {
	return append([]string(nil), e.Catalog.LifeEventTypes...)
}

// SimulateLifeEvent runs the simulation for eventType against a snapshot.
// Unrecognized types and catalog types without a model are not errors: the
// snapshot is echoed with an empty trajectory and the status says which case
// applied (see LifeEventErr).
func (e *Engine) SimulateLifeEvent(eventType string, assets []domain.Asset, liabilities []domain.Liability) (*domain.LifeEventResult, error) {
	kind := domain.ParseLifeEventKind(eventType)
	result := &domain.LifeEventResult{
		Type:               eventType,
		Kind:               kind,
		CurrentAssets:      domain.CloneAssets(assets),
		CurrentLiabilities: domain.CloneLiabilities(liabilities),
		Trajectory:         []domain.LifeEventTrajectoryRow{},
	}

	handler, ok := lifeEventHandlers[kind]
	if !ok || !e.Catalog.IsListedLifeEvent(kind.String()) {
		e.Logger.Warnf("life event %q is not recognized", eventType)
		result.Status = domain.LifeEventUnrecognized
		return result, nil
	}

	req := domain.LifeEventRequest{Type: eventType, Assets: assets, Liabilities: liabilities}
	rows, status, err := handler(e, req)
	if err != nil {
		return nil, fmt.Errorf("life event %q: %w", eventType, err)
	}
	if status == domain.LifeEventNotImplemented {
		e.Logger.Warnf("life event %q has no model yet", eventType)
	}

	result.Status = status
	result.Trajectory = rows
	return result, nil
}

// CoastFireSavings projects a Coast FIRE schedule from startingBalance
func (e *Engine) CoastFireSavings(schedule []domain.CoastFireSavings, initialRate, startingBalance decimal.Decimal) ([]domain.CoastFireYear, error) {
	years, err := ProjectCoastFire(schedule, initialRate, startingBalance, e.Catalog.RoundingDigit)
	if err != nil {
		return nil, fmt.Errorf("coast fire savings: %w", err)
	}
	e.Logger.Debugf("coast fire savings: %d years from balance %s", len(years), startingBalance.StringFixed(2))
	return years, nil
}

// CoastFireRequest resolves request defaults from the catalog and projects it
func (e *Engine) CoastFireRequest(req domain.CoastFireRequest) ([]domain.CoastFireYear, error) {
	rate := e.Catalog.CoastFire.InitialInterestRate
	if req.InitialInterestRate != nil {
		rate = *req.InitialInterestRate
	}
	balance := e.Catalog.CoastFire.CurrentBalance
	if req.CurrentBalance != nil {
		balance = *req.CurrentBalance
	}
	return e.CoastFireSavings(req.Savings, rate, balance)
}

// CostOfRaisingChildren evaluates the child cost model, filling unset request
// fields from the catalog defaults
func (e *Engine) CostOfRaisingChildren(req domain.ChildCostRequest) ([]domain.ChildCost, error) {
	d := e.Catalog.ChildCost
	if req.AnnualExpensesStart.IsZero() {
		req.AnnualExpensesStart = d.AnnualExpensesStart
	}
	if req.AnnualExpensesIncrement.IsZero() {
		req.AnnualExpensesIncrement = d.AnnualExpensesIncrement
	}
	if len(req.Children) == 0 {
		req.Children = append([]int(nil), d.Children...)
	}
	if len(req.Interests) == 0 {
		req.Interests = append([]decimal.Decimal(nil), d.Interests...)
	}
	if req.Years == 0 {
		req.Years = d.Years
	}

	costs, err := CostOfRaisingChildren(req, e.Catalog.RoundingDigit)
	if err != nil {
		return nil, fmt.Errorf("cost of raising children: %w", err)
	}
	return costs, nil
}
