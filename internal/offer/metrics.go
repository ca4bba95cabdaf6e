package offer

import "github.com/loi-rocket/dealflow-cli/internal/config"

// Metrics holds the percentage, fee, and range figures derived from the offer.
type Metrics struct {
	OfferToAsking     float64
	OfferToAskingOK   bool
	NewAgentFee       float64
	TotalCost         float64
	CashOfferHigh     float64
	CashOfferLow      float64
	EntryFeeNoCC      float64
	EntryFeeNoCCPct   float64
	EntryFeeNoCCOK    bool
	EntryFeeWithCC    float64
	EntryFeeWithCCPct float64
	EntryFeeWithCCOK  bool
}

// Derived computes the post-offer metrics. The *OK flags are false when the
// corresponding ratio's denominator is 0 and the reported value is 0.
func Derived(offerPrice, propertyValue, newCashToSeller, otherDebt, closingCosts float64, d *config.DealConfig) Metrics {
	m := Metrics{
		NewAgentFee: offerPrice * d.NewAgentFeePct,
	}

	m.OfferToAsking, m.OfferToAskingOK = Ratio2(offerPrice, propertyValue)

	// Multiplicative on purpose: the original computes price x fee here even
	// though the name reads as a sum. Pinned by test until product rules on it.
	m.TotalCost = offerPrice * m.NewAgentFee

	m.CashOfferHigh = FloorTo(propertyValue*d.CashOfferHighPct, d.RoundingFactor)
	m.CashOfferLow = FloorTo(propertyValue*d.CashOfferLowPct, d.RoundingFactor)

	m.EntryFeeNoCC = newCashToSeller + m.NewAgentFee + otherDebt + d.AverageAssignmentFee
	m.EntryFeeNoCCPct, m.EntryFeeNoCCOK = Ratio2(m.EntryFeeNoCC, offerPrice)

	m.EntryFeeWithCC = m.EntryFeeNoCC + closingCosts
	m.EntryFeeWithCCPct, m.EntryFeeWithCCOK = Ratio2(m.EntryFeeWithCC, offerPrice)

	return m
}
