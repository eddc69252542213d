package calculation

import (
	"errors"
	"testing"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidityRatio(t *testing.T) {
	tests := []struct {
		name         string
		cash         int64
		cc           int64
		legacy       bool
		wantCashToCc string // empty means nil
		wantCcToCash string
	}{
		{name: "cash only", cash: 1000, cc: 0, wantCashToCc: "100"},
		{name: "debt only", cash: 0, cc: 2000, wantCcToCash: "100"},
		{name: "cash exceeds debt", cash: 1000, cc: 250, wantCashToCc: "25"},
		{name: "debt exceeds cash", cash: 1000, cc: 2000, wantCcToCash: "50"},
		// the historical formula divided cash by itself, always reporting 100
		{name: "debt exceeds cash legacy", cash: 1000, cc: 2000, legacy: true, wantCcToCash: "100"},
		{name: "both zero", cash: 0, cc: 0},
		{name: "equal", cash: 700, cc: 700},
		{name: "rounded", cash: 3, cc: 1, wantCashToCc: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cashToCc, ccToCash := LiquidityRatio(decimal.NewFromInt(tt.cash), decimal.NewFromInt(tt.cc), 2, tt.legacy)
			assertRatio(t, tt.wantCashToCc, cashToCc)
			assertRatio(t, tt.wantCcToCash, ccToCash)
		})
	}
}

func assertRatio(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	if want == "" {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, want, got.String())
}

func TestDebtToIncomeRatio(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	payment := func(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }
	years := func(v int) *int { return &v }

	tests := []struct {
		name        string
		income      int64
		liabilities []domain.Liability
		expected    string
	}{
		{
			name:        "stated payment",
			income:      60000,
			liabilities: []domain.Liability{{TypeName: "credit card", Value: decimal.NewFromInt(5000), MonthlyPayment: payment(200)}},
			expected:    "4",
		},
		{
			name:        "derived from term",
			income:      120000,
			liabilities: []domain.Liability{{TypeName: "Student Loan", Value: decimal.NewFromInt(12000), Years: years(1)}},
			expected:    "10",
		},
		{
			name:        "zero payment derives from term",
			income:      120000,
			liabilities: []domain.Liability{{TypeName: "auto loan", Value: decimal.NewFromInt(24000), MonthlyPayment: payment(0), Years: years(2)}},
			expected:    "10",
		},
		{
			name:        "type not acceptable",
			income:      60000,
			liabilities: []domain.Liability{{TypeName: "boat", Value: decimal.NewFromInt(5000), MonthlyPayment: payment(200)}},
			expected:    "0",
		},
		{
			name:        "no usable payment",
			income:      60000,
			liabilities: []domain.Liability{{TypeName: "credit card", Value: decimal.NewFromInt(5000)}},
			expected:    "0",
		},
		{
			name:   "mixed",
			income: 90000,
			liabilities: []domain.Liability{
				{TypeName: "credit card", Value: decimal.NewFromInt(5000), MonthlyPayment: payment(250)},
				{TypeName: "mortgage", Value: decimal.NewFromInt(300000), MonthlyPayment: payment(1500)},
				{TypeName: "boat", Value: decimal.NewFromInt(5000), MonthlyPayment: payment(999)},
			},
			expected: "23.33", // 1750*12/90000*100
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DebtToIncomeRatio(catalog, decimal.NewFromInt(tt.income), tt.liabilities)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestDebtToIncomeRatio_NonPositiveIncome(t *testing.T) {
	catalog := domain.DefaultRateCatalog()
	for _, income := range []int64{0, -1000} {
		_, err := DebtToIncomeRatio(catalog, decimal.NewFromInt(income), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisionByZero), "income %d", income)
	}
}
