package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loi-rocket/dealflow-cli/internal/config"
	"github.com/loi-rocket/dealflow-cli/internal/model"
	"github.com/loi-rocket/dealflow-cli/internal/strategy"
)

func testDeal() *config.DealConfig {
	return &config.DealConfig{
		TraditionalAgentFeePct:     0.06,
		TraditionalClosingCostsPct: 0.02,
		NewAgentFeePct:             0.03,
		CashOfferHighPct:           0.70,
		CashOfferLowPct:            0.60,
		MaxStandardCashToSeller:    20000,
		CashToSellerFactor:         1.5,
		CashToSellerOption:         config.CashToSellerStandard,
		NegativeTiers:              config.DefaultNegativeTiers(),
		RoundValues:                true,
		RoundingFactor:             500,
		AverageAssignmentFee:       15000,
		MaxInterestRatePct:         0.07,
		MaxEquityPct:               0.15,
	}
}

var asOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestNewRejectsInvalidSettings(t *testing.T) {
	d := testDeal()
	d.CashToSellerOption = "Reckless"

	_, err := New(d, asOf)
	assert.Error(t, err)
}

func TestComputeEndToEnd(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	l := model.ListingRawData{
		PropAddress:   "123 Main St",
		ListingStatus: "Active",
		ListingPrice:  300000,
		Loan1Balance:  150000,
	}

	full, err := a.Compute(&l)
	require.NoError(t, err)

	assert.Equal(t, 300000.0, full.EstPropertyValue)
	assert.Equal(t, 150000.0, full.EstMortgageBalance)
	assert.Equal(t, 0.0, full.EstOtherDebtBalance)
	assert.Equal(t, 150000.0, full.EstEquityAdjusted)
	assert.Equal(t, 0.5, full.EstEquityPctAdjusted)
	assert.Equal(t, 18000.0, full.EstAgentFee)
	assert.Equal(t, 6000.0, full.EstClosingCosts)
	assert.Equal(t, 126000.0, full.EstCashToSeller)
	assert.Equal(t, 20000.0, full.NewCashToSeller)

	// Equity covers the cash figure plus fees, so the offer pays out the
	// debt plus equity net of fees.
	assert.Equal(t, 276000.0, full.OfferPrice)
	assert.Equal(t, 276000*0.03, full.NewAgentFee)
	assert.Equal(t, 0.92, full.OfferToAsking)
	assert.Equal(t, 210000.0, full.CashOfferHigh)
	assert.Equal(t, 180000.0, full.CashOfferLow)

	assert.Equal(t, model.StrategyHybrid, full.AcquisitionStrategy)
	assert.Equal(t, strategy.NoteMaxEquityPct, full.Note)

	// The strategy tag makes the record self-describing.
	require.NotEmpty(t, full.Tags)
	last := full.Tags[len(full.Tags)-1]
	assert.Equal(t, string(model.StrategyHybrid), last.Value)
	assert.Equal(t, "basic", last.Type)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	l := model.ListingRawData{ListingStatus: "Active", ListingPrice: 300000, Loan1Balance: 150000}
	before := l

	_, err = a.Compute(&l)
	require.NoError(t, err)
	assert.Equal(t, before, l)
}

func TestComputeIdempotent(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	l := model.ListingRawData{
		ListingStatus:      "Pending",
		PropLastSaleAmount: 200000,
		PropLastSaleDate:   "2020-06-01",
		LienAmount:         2500,
	}

	first, err := a.Compute(&l)
	require.NoError(t, err)
	second, err := a.Compute(&l)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeProblemTag(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	// Offer exceeds a sub-debt listing price: possibly upside down.
	l := model.ListingRawData{
		ListingStatus: "Active",
		ListingPrice:  100000,
		Loan1Balance:  180000,
	}

	full, err := a.Compute(&l)
	require.NoError(t, err)

	assert.Greater(t, full.OfferPrice, full.ListingPrice)
	assert.Contains(t, full.Note, strategy.NoteProblemUpsideDown)

	var problemTagged bool
	for _, tag := range full.Tags {
		if tag.Value == string(model.StrategyProblem) {
			problemTagged = true
		}
	}
	assert.True(t, problemTagged)
	// The strategy label itself is never Problem.
	assert.NotEqual(t, model.StrategyProblem, full.AcquisitionStrategy)
}

func TestComputeDegenerateListing(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	full, err := a.Compute(&model.ListingRawData{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, full.EstPropertyValue)
	assert.Equal(t, 1500.0, full.NewCashToSeller)
	assert.Equal(t, model.StrategyOther, full.AcquisitionStrategy)
	assert.Contains(t, full.Note, strategy.NoteIndeterminate)
}

func TestMapBatchPreservesOrder(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	listings := make([]model.ListingRawData, 50)
	for i := range listings {
		listings[i] = model.ListingRawData{
			ListingStatus: "Active",
			ListingPrice:  float64(100000 + i*1000),
			Loan1Balance:  50000,
		}
	}

	batch, err := a.MapBatch(context.Background(), listings, 8)
	require.NoError(t, err)
	require.Len(t, batch.Results, 50)
	assert.Zero(t, batch.Failed)

	for i, r := range batch.Results {
		require.NotNil(t, r, "index %d", i)
		assert.Equal(t, float64(100000+i*1000), r.ListingPrice)
	}
}

func TestMapBatchSummary(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	listings := []model.ListingRawData{
		{ListingStatus: "Active", ListingPrice: 300000, Loan1Balance: 150000}, // Hybrid
		{},                          // Other
		{Loan1Balance: 120000},      // Subject To
	}

	batch, err := a.MapBatch(context.Background(), listings, 2)
	require.NoError(t, err)

	s := batch.Summarize()
	assert.Equal(t, 3, s.Listings)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, 1, s.Strategies[model.StrategyHybrid])
	assert.Equal(t, 1, s.Strategies[model.StrategyOther])
	assert.Equal(t, 1, s.Strategies[model.StrategySubjectTo])
}

func TestMapBatchCancelledContext(t *testing.T) {
	a, err := New(testDeal(), asOf)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.MapBatch(ctx, make([]model.ListingRawData, 10), 2)
	assert.Error(t, err)
}
