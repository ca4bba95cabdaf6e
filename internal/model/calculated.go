package model

// AcquisitionStrategy is the deal structure recommended for a listing.
type AcquisitionStrategy string

const (
	StrategySubjectTo       AcquisitionStrategy = "Subject To"
	StrategyHybrid          AcquisitionStrategy = "Hybrid"
	StrategySellerFinancing AcquisitionStrategy = "Seller Financing"
	StrategyOther           AcquisitionStrategy = "Other"

	// StrategyProblem is never produced by the classifier. It exists for the
	// note/tag annotations that flag upside-down or short-sale-looking records.
	StrategyProblem AcquisitionStrategy = "Problem"
)

// ListingCalculatedData holds every field derived by the valuation pipeline.
type ListingCalculatedData struct {
	EstPropertyValue     float64             `json:"est_property_value"`
	EstMortgageBalance   float64             `json:"est_mortgage_balance"`
	EstOtherDebtBalance  float64             `json:"est_other_debt_balance"`
	EstEquityAdjusted    float64             `json:"est_equity_adjusted"`
	EstEquityPctAdjusted float64             `json:"est_equity_percent_adjusted"`
	EstAgentFee          float64             `json:"est_agent_fee"`
	NewAgentFee          float64             `json:"new_agent_fee"`
	EstClosingCosts      float64             `json:"est_closing_costs"`
	EstCashToSeller      float64             `json:"est_cash_to_seller"`
	NewCashToSeller      float64             `json:"new_cash_to_seller"`
	OfferPrice           float64             `json:"offer_price"`
	TotalCost            float64             `json:"total_cost"`
	CashOfferHigh        float64             `json:"cash_offer_high"`
	CashOfferLow         float64             `json:"cash_offer_low"`
	EntryFeeWithoutCC    float64             `json:"entry_fee_without_cc"`
	EntryFeeWithoutCCPct float64             `json:"entry_fee_without_cc_percent"`
	EntryFeeWithCC       float64             `json:"entry_fee_with_cc"`
	EntryFeeWithCCPct    float64             `json:"entry_fee_with_cc_percent"`
	OfferToAsking        float64             `json:"offer_to_asking"`
	AcquisitionStrategy  AcquisitionStrategy `json:"acquisition_strategy"`
	Note                 string              `json:"note"`
}

// ListingFull is the self-describing analysis result for one listing: the raw
// record, every calculated field, and the tag set including the strategy tag.
type ListingFull struct {
	ListingRawData
	ListingCalculatedData
	Tags []Tag `json:"tags"`
}
