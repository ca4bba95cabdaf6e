package offer

// PriceInputs carries everything the offer-price calculation consumes.
type PriceInputs struct {
	MortgageBalance float64
	OtherDebt       float64
	EquityAdjusted  float64
	NewCashToSeller float64
	ClosingCosts    float64
	AgentFee        float64
	ListingPrice    float64
	// RoundingUnit is the floor unit applied to debt-backed offers. The
	// original hardcoded 500 here while exposing a general rounding factor in
	// settings; the factor now drives both, with 500 as the shipped default.
	RoundingUnit float64
}

// Price derives the buyer's offer. With debt on the property the offer covers
// the debt plus either the full adjusted equity net of fees (when equity can
// absorb the cash-to-seller and fees) or just the policy cash figure, floored
// to the rounding unit. Debt-free properties are offered the listing price net
// of fees, with no flooring.
func Price(in PriceInputs) float64 {
	totalDebt := in.MortgageBalance + in.OtherDebt
	if totalDebt <= 0 {
		return in.ListingPrice - in.ClosingCosts - in.AgentFee
	}

	if in.EquityAdjusted >= in.NewCashToSeller+in.ClosingCosts+in.AgentFee {
		return FloorTo(in.MortgageBalance+in.OtherDebt+in.EquityAdjusted-in.ClosingCosts-in.AgentFee, in.RoundingUnit)
	}
	return FloorTo(in.MortgageBalance+in.OtherDebt+in.NewCashToSeller, in.RoundingUnit)
}
