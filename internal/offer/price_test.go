package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceDebtEquitySufficient(t *testing.T) {
	// Equity covers cash figure plus fees, so the offer pays out the full
	// equity net of fees, floored to the unit.
	got := Price(PriceInputs{
		MortgageBalance: 150000,
		EquityAdjusted:  150000,
		NewCashToSeller: 20000,
		ClosingCosts:    6000,
		AgentFee:        18000,
		ListingPrice:    300000,
		RoundingUnit:    500,
	})
	assert.Equal(t, 276000.0, got)
}

func TestPriceDebtEquityInsufficient(t *testing.T) {
	got := Price(PriceInputs{
		MortgageBalance: 150000,
		OtherDebt:       10000,
		EquityAdjusted:  30000,
		NewCashToSeller: 20000,
		ClosingCosts:    6000,
		AgentFee:        18000,
		ListingPrice:    200000,
		RoundingUnit:    500,
	})
	// 30000 < 20000+6000+18000, so debt plus cash figure, floored.
	assert.Equal(t, 180000.0, got)
}

func TestPriceDebtBranchFloorsToUnit(t *testing.T) {
	got := Price(PriceInputs{
		MortgageBalance: 150123,
		NewCashToSeller: 20000,
		EquityAdjusted:  10000,
		ClosingCosts:    6000,
		AgentFee:        18000,
		RoundingUnit:    500,
	})
	assert.Equal(t, 170000.0, got)
}

func TestPriceNoDebtUsesListingPriceUnfloored(t *testing.T) {
	got := Price(PriceInputs{
		ListingPrice: 250123,
		ClosingCosts: 5002.46,
		AgentFee:     15007.38,
		RoundingUnit: 500,
	})
	assert.InDelta(t, 250123-5002.46-15007.38, got, 0.001)
}

func TestPriceMonotonicInEquity(t *testing.T) {
	base := PriceInputs{
		MortgageBalance: 150000,
		NewCashToSeller: 20000,
		ClosingCosts:    6000,
		AgentFee:        18000,
		RoundingUnit:    500,
	}

	prev := -1.0
	for equity := 44000.0; equity <= 200000; equity += 777 {
		in := base
		in.EquityAdjusted = equity
		got := Price(in)
		assert.GreaterOrEqual(t, got, prev, "equity=%v", equity)
		prev = got
	}
}
