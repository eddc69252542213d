package calculation

import (
	"testing"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectAssetsFutureValue_SingleYear(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	catalog.BankInterest = decimal.NewFromInt(2)
	catalog.Horizons = []int{1}

	points := ProjectAssetsFutureValue(catalog, []domain.Asset{asset("cash", 1000)})
	require.Len(t, points, 1)
	assert.Equal(t, 1, points[0].Year)
	assert.Equal(t, "cash", points[0].TypeName)
	assert.Equal(t, "2", points[0].InterestRate.String())
	assert.Equal(t, "1000", points[0].PresentValue.String())
	assert.Equal(t, "1020.00", points[0].FutureValue.StringFixed(2))
}

func TestProjectAssetsFutureValue_OrderAndRates(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	catalog.BankInterest = decimal.NewFromInt(2)
	catalog.MarketInterest = decimal.NewFromInt(10)
	catalog.Horizons = []int{2, 1}

	assets := []domain.Asset{asset("Stock", 1000), asset("cash", 500), asset("gold", 300)}
	points := ProjectAssetsFutureValue(catalog, assets)
	require.Len(t, points, 6)

	expected := []struct {
		year     int
		typeName string
		fv       string
	}{
		{2, "Stock", "1210.00"},
		{2, "cash", "520.20"},
		{2, "gold", "300.00"},
		{1, "Stock", "1100.00"},
		{1, "cash", "510.00"},
		{1, "gold", "300.00"},
	}
	for i, want := range expected {
		assert.Equal(t, want.year, points[i].Year, "point %d", i)
		assert.Equal(t, want.typeName, points[i].TypeName, "point %d", i)
		assert.Equal(t, want.fv, points[i].FutureValue.StringFixed(2), "point %d", i)
	}
	assert.True(t, points[2].InterestRate.IsZero(), "unrecognized types get no growth")
}

func TestProjectAssetsFutureValue_Empty(t *testing.T) {
	points := ProjectAssetsFutureValue(domain.DefaultRateCatalog(), nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}
