package calculation

import (
	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// ProjectAssetsFutureValue projects every asset over every catalog horizon.
// Points are ordered by horizon first, then by asset in input order.
func ProjectAssetsFutureValue(catalog domain.RateCatalog, assets []domain.Asset) []domain.AssetFutureValue {
	points := make([]domain.AssetFutureValue, 0, len(catalog.Horizons)*len(assets))
	for _, year := range catalog.Horizons {
		for _, asset := range assets {
			interest := catalog.InterestFor(asset.TypeName)
			fv := finmath.FutureValue(finmath.PercentToRate(interest), year, decimal.Zero, asset.Value)
			points = append(points, domain.AssetFutureValue{
				Year:         year,
				TypeName:     asset.TypeName,
				InterestRate: interest,
				PresentValue: asset.Value,
				FutureValue:  finmath.Round(fv, catalog.RoundingDigit),
			})
		}
	}
	return points
}
