package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLiabilityUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantValue   string
		wantPayment string // empty means nil
		wantYears   int    // zero means nil
	}{
		{name: "payment stated", yaml: "type_name: credit card\nvalue: 500\nmonthly_payment: 25.5\n", wantValue: "500", wantPayment: "25.5"},
		{name: "payment absent", yaml: "type_name: student loan\nvalue: 12000\nyears: 4\n", wantValue: "12000", wantYears: 4},
		{name: "zero payment kept", yaml: "type_name: mortgage\nvalue: 1500\nmonthly_payment: 0\n", wantValue: "1500", wantPayment: "0"},
		{name: "value absent", yaml: "type_name: boat\n", wantValue: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Liability
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &l))
			assert.Equal(t, tt.wantValue, l.Value.String())
			if tt.wantPayment == "" {
				assert.Nil(t, l.MonthlyPayment)
			} else {
				require.NotNil(t, l.MonthlyPayment)
				assert.Equal(t, tt.wantPayment, l.MonthlyPayment.String())
			}
			if tt.wantYears == 0 {
				assert.Nil(t, l.Years)
			} else {
				require.NotNil(t, l.Years)
				assert.Equal(t, tt.wantYears, *l.Years)
			}
		})
	}
}

func TestLiabilityUnmarshalYAML_InvalidNumber(t *testing.T) {
	var l Liability
	assert.Error(t, yaml.Unmarshal([]byte("type_name: card\nvalue: lots\n"), &l))
	assert.Error(t, yaml.Unmarshal([]byte("type_name: card\nvalue: 1\nmonthly_payment: some\n"), &l))
}

func TestLiabilityEffectiveMonthlyPayment(t *testing.T) {
	payment := decimal.NewFromInt(300)
	zero := decimal.Zero
	years := 2
	noTerm := 0

	tests := []struct {
		name     string
		l        Liability
		usable   bool
		expected string
	}{
		{name: "stated", l: Liability{Value: decimal.NewFromInt(9000), MonthlyPayment: &payment, Years: &years}, usable: true, expected: "300"},
		{name: "derived", l: Liability{Value: decimal.NewFromInt(2400), Years: &years}, usable: true, expected: "100"},
		{name: "zero payment derives", l: Liability{Value: decimal.NewFromInt(4800), MonthlyPayment: &zero, Years: &years}, usable: true, expected: "200"},
		{name: "zero payment without term", l: Liability{Value: decimal.NewFromInt(4800), MonthlyPayment: &zero}, usable: true, expected: "0"},
		{name: "no term", l: Liability{Value: decimal.NewFromInt(4800), Years: &noTerm}, usable: false, expected: "0"},
		{name: "nothing", l: Liability{Value: decimal.NewFromInt(4800)}, usable: false, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.l.HasUsablePayment())
			assert.Equal(t, tt.expected, tt.l.EffectiveMonthlyPayment().String())
		})
	}
}

func TestIsType(t *testing.T) {
	assert.True(t, Asset{TypeName: " Cash "}.IsType(AssetTypeCash))
	assert.False(t, Asset{TypeName: "cash account"}.IsType(AssetTypeCash))
	assert.True(t, Liability{TypeName: "CREDIT CARD"}.IsType(LiabilityTypeCreditCard))
}

func TestSnapshotSummaryRound(t *testing.T) {
	s := SnapshotSummary{
		AssetsTotal:      decimal.RequireFromString("10.005"),
		AssetsMean:       decimal.RequireFromString("3.335"),
		LiabilitiesTotal: decimal.RequireFromString("1.1"),
		LiabilitiesMean:  decimal.RequireFromString("0.004"),
		Diff:             decimal.RequireFromString("-8.905"),
	}
	r := s.Round(2)
	assert.Equal(t, "10.01", r.AssetsTotal.String())
	assert.Equal(t, "3.34", r.AssetsMean.String())
	assert.Equal(t, "1.1", r.LiabilitiesTotal.String())
	assert.Equal(t, "0", r.LiabilitiesMean.String())
	assert.Equal(t, "-8.91", r.Diff.String())
}

func TestCloneSnapshot(t *testing.T) {
	assert.Nil(t, CloneAssets(nil))
	assert.Nil(t, CloneLiabilities(nil))
	assert.Empty(t, CloneAssets([]Asset{}))

	payment := decimal.NewFromInt(10)
	years := 3
	in := []Liability{{TypeName: "loan", Value: decimal.NewFromInt(100), MonthlyPayment: &payment, Years: &years}}
	out := CloneLiabilities(in)
	require.Equal(t, in, out)

	*out[0].MonthlyPayment = decimal.NewFromInt(99)
	*out[0].Years = 9
	assert.Equal(t, "10", in[0].MonthlyPayment.String())
	assert.Equal(t, 3, *in[0].Years)
}
