package estimate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

func TestMortgageBalanceDisclosedLoansWin(t *testing.T) {
	l := model.ListingRawData{
		Loan1Balance:       100000,
		Loan2Balance:       25000,
		Loan4Balance:       5000,
		PropLastSaleAmount: 500000,
		PropLastSaleDate:   "2015-01-01",
	}
	got := MortgageBalance(&l, testAsOf)
	assert.Equal(t, 130000.0, got)
}

func TestMortgageBalanceProjection(t *testing.T) {
	l := model.ListingRawData{
		PropLastSaleAmount: 200000,
		PropLastSaleDate:   "2020-06-01",
	}
	got := MortgageBalance(&l, testAsOf)

	// Principal starts at 80% of the sale and amortizes down over 5 years.
	require.Greater(t, got, 0.0)
	assert.Less(t, got, 200000*0.8)

	// More elapsed time means a lower remaining balance.
	later := MortgageBalance(&l, testAsOf.AddDate(2, 0, 0))
	assert.Less(t, later, got)
}

func TestMortgageBalanceProjectionExactSchedule(t *testing.T) {
	l := model.ListingRawData{
		PropLastSaleAmount: 200000,
		PropLastSaleDate:   "2025-01-01",
	}
	// 3 whole months elapsed: replicate the schedule by hand.
	asOf := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	principal := 200000 * 0.8
	r := 0.04 / 12
	growth := 1.0
	for i := 0; i < 360; i++ {
		growth *= 1 + r
	}
	payment := principal * r * growth / (growth - 1)
	balance := principal
	for i := 0; i < 3; i++ {
		balance -= payment - balance*r
	}

	got := MortgageBalance(&l, asOf)
	assert.InDelta(t, balance, got, 0.01)
}

func TestMortgageBalanceNoData(t *testing.T) {
	tests := []struct {
		name    string
		listing model.ListingRawData
	}{
		{"empty record", model.ListingRawData{}},
		{"sale amount without date", model.ListingRawData{PropLastSaleAmount: 200000}},
		{"unparseable sale date", model.ListingRawData{PropLastSaleAmount: 200000, PropLastSaleDate: "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, MortgageBalance(&tt.listing, testAsOf))
		})
	}
}

func TestOtherDebt(t *testing.T) {
	l := model.ListingRawData{
		ForeclosureDefaultAmount: 12000,
		LienAmount:               3500,
	}
	assert.Equal(t, 15500.0, OtherDebt(&l))
	assert.Equal(t, 0.0, OtherDebt(&model.ListingRawData{}))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2020-06-15", true, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"6/15/2020", true, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"06/15/2020", true, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2020/06/15", true, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2020-06-15T10:30:00Z", true, time.Date(2020, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}
