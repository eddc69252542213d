package calculation

import (
	"fmt"
	"strings"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// Aggregate reduces a snapshot to totals and means. Both lists must be
// non-empty since the mean of an empty set is undefined. Values are unrounded.
func Aggregate(assets []domain.Asset, liabilities []domain.Liability) (domain.SnapshotSummary, error) {
	if len(assets) == 0 {
		return domain.SnapshotSummary{}, fmt.Errorf("no assets provided: %w", ErrEmptyInput)
	}
	if len(liabilities) == 0 {
		return domain.SnapshotSummary{}, fmt.Errorf("no liabilities provided: %w", ErrEmptyInput)
	}

	assetValues := AssetValues(assets)
	liabilityValues := LiabilityValues(liabilities)

	assetsTotal := finmath.Sum(assetValues)
	liabilitiesTotal := finmath.Sum(liabilityValues)

	return domain.SnapshotSummary{
		AssetsTotal:      assetsTotal,
		AssetsMean:       finmath.Mean(assetValues),
		LiabilitiesTotal: liabilitiesTotal,
		LiabilitiesMean:  finmath.Mean(liabilityValues),
		Diff:             assetsTotal.Sub(liabilitiesTotal),
	}, nil
}

// AssetValues projects assets onto their values, preserving order
func AssetValues(assets []domain.Asset) []decimal.Decimal {
	values := make([]decimal.Decimal, len(assets))
	for i, a := range assets {
		values[i] = a.Value
	}
	return values
}

// LiabilityValues projects liabilities onto their values, preserving order
func LiabilityValues(liabilities []domain.Liability) []decimal.Decimal {
	values := make([]decimal.Decimal, len(liabilities))
	for i, l := range liabilities {
		values[i] = l.Value
	}
	return values
}

// FilterAssets keeps the assets whose type is one of types (case-insensitive)
func FilterAssets(assets []domain.Asset, types ...string) []domain.Asset {
	var out []domain.Asset
	for _, a := range assets {
		if matchesAny(a.TypeName, types) {
			out = append(out, a)
		}
	}
	return out
}

// FilterLiabilities keeps the liabilities whose type is one of types (case-insensitive)
func FilterLiabilities(liabilities []domain.Liability, types ...string) []domain.Liability {
	var out []domain.Liability
	for _, l := range liabilities {
		if matchesAny(l.TypeName, types) {
			out = append(out, l)
		}
	}
	return out
}

// SumAssets totals asset values
func SumAssets(assets []domain.Asset) decimal.Decimal {
	return finmath.Sum(AssetValues(assets))
}

// SumLiabilities totals liability values
func SumLiabilities(liabilities []domain.Liability) decimal.Decimal {
	return finmath.Sum(LiabilityValues(liabilities))
}

func matchesAny(typeName string, types []string) bool {
	typeName = strings.TrimSpace(typeName)
	for _, t := range types {
		if strings.EqualFold(typeName, t) {
			return true
		}
	}
	return false
}
