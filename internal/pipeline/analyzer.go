// Package pipeline sequences the estimators, calculators, and classifier into
// the per-listing valuation pipeline.
package pipeline

import (
	"math"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/loi-rocket/dealflow-cli/internal/config"
	"github.com/loi-rocket/dealflow-cli/internal/estimate"
	"github.com/loi-rocket/dealflow-cli/internal/model"
	"github.com/loi-rocket/dealflow-cli/internal/offer"
	"github.com/loi-rocket/dealflow-cli/internal/strategy"
)

// Analyzer computes the full set of calculated fields for listings under one
// settings object. Safe for concurrent use: the settings are read-only and
// asOf is fixed at construction, so a batch is a pure per-record map.
type Analyzer struct {
	deal *config.DealConfig
	asOf time.Time
}

// New creates an Analyzer. The deal settings must already be validated;
// asOf anchors every date-relative estimate so recomputation is idempotent.
func New(deal *config.DealConfig, asOf time.Time) (*Analyzer, error) {
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{deal: deal, asOf: asOf}, nil
}

// Compute runs the valuation pipeline for one listing and returns the merged
// result. The input is never mutated. Identical inputs produce bit-identical
// output.
func (a *Analyzer) Compute(l *model.ListingRawData) (*model.ListingFull, error) {
	propertyValue := math.Round(estimate.PropertyValue(l, a.asOf))
	mortgageBalance := estimate.MortgageBalance(l, a.asOf)
	otherDebt := estimate.OtherDebt(l)
	totalDebt := mortgageBalance + otherDebt

	proceeds := offer.SellerProceeds(propertyValue, mortgageBalance, otherDebt, l.IsActive(), a.deal)

	newCashToSeller, err := offer.NewCashToSeller(proceeds.CashToSeller, a.deal)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: cash to seller policy")
	}

	offerPrice := offer.Price(offer.PriceInputs{
		MortgageBalance: mortgageBalance,
		OtherDebt:       otherDebt,
		EquityAdjusted:  proceeds.EquityAdjusted,
		NewCashToSeller: newCashToSeller,
		ClosingCosts:    proceeds.ClosingCosts,
		AgentFee:        proceeds.AgentFee,
		ListingPrice:    l.ListingPrice,
		RoundingUnit:    a.deal.RoundingFactor,
	})

	metrics := offer.Derived(offerPrice, propertyValue, newCashToSeller, otherDebt, proceeds.ClosingCosts, a.deal)

	strat := strategy.Classify(proceeds.CashToSeller, newCashToSeller, totalDebt)

	annotation := strategy.Annotate(strategy.AnnotateInputs{
		Strategy:         strat,
		OfferPrice:       offerPrice,
		ListingPrice:     l.ListingPrice,
		NewCashToSeller:  newCashToSeller,
		TotalDebt:        totalDebt,
		EquityPctAdj:     proceeds.EquityPctAdjusted,
		Loan1Rate:        l.Loan1InterestRate,
		DegenerateRatios: !proceeds.EquityPctOK,
	}, a.deal)

	calc := model.ListingCalculatedData{
		EstPropertyValue:     propertyValue,
		EstMortgageBalance:   mortgageBalance,
		EstOtherDebtBalance:  otherDebt,
		EstEquityAdjusted:    proceeds.EquityAdjusted,
		EstEquityPctAdjusted: proceeds.EquityPctAdjusted,
		EstAgentFee:          proceeds.AgentFee,
		NewAgentFee:          metrics.NewAgentFee,
		EstClosingCosts:      proceeds.ClosingCosts,
		EstCashToSeller:      proceeds.CashToSeller,
		NewCashToSeller:      newCashToSeller,
		OfferPrice:           offerPrice,
		TotalCost:            metrics.TotalCost,
		CashOfferHigh:        metrics.CashOfferHigh,
		CashOfferLow:         metrics.CashOfferLow,
		EntryFeeWithoutCC:    metrics.EntryFeeNoCC,
		EntryFeeWithoutCCPct: metrics.EntryFeeNoCCPct,
		EntryFeeWithCC:       metrics.EntryFeeWithCC,
		EntryFeeWithCCPct:    metrics.EntryFeeWithCCPct,
		OfferToAsking:        metrics.OfferToAsking,
		AcquisitionStrategy:  strat,
		Note:                 annotation.Note,
	}

	tags := make([]model.Tag, 0, len(l.Tags)+2)
	tags = append(tags, l.Tags...)
	tags = append(tags, model.NewBasicTag("red", string(strat)))
	if annotation.Problem {
		tags = append(tags, model.NewBasicTag("orange", string(model.StrategyProblem)))
	}

	zap.L().Debug("pipeline: listing analyzed",
		zap.String("address", l.PropAddress),
		zap.Float64("property_value", propertyValue),
		zap.Float64("mortgage_balance", mortgageBalance),
		zap.Float64("offer_price", offerPrice),
		zap.String("strategy", string(strat)),
	)

	return &model.ListingFull{
		ListingRawData:        *l,
		ListingCalculatedData: calc,
		Tags:                  tags,
	}, nil
}
