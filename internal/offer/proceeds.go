package offer

import "github.com/loi-rocket/dealflow-cli/internal/config"

// Proceeds holds what the seller walks away with under current terms.
type Proceeds struct {
	EquityAdjusted    float64
	EquityPctAdjusted float64
	// EquityPctOK is false when the property value is 0 and the equity
	// percentage is indeterminate (reported as 0).
	EquityPctOK  bool
	AgentFee     float64
	ClosingCosts float64
	CashToSeller float64
}

// SellerProceeds computes equity, fees, and net cash to the seller under the
// current listing terms. The traditional agent fee applies only to actively
// on-market listings; closing costs always apply.
func SellerProceeds(propertyValue, mortgageBalance, otherDebt float64, active bool, d *config.DealConfig) Proceeds {
	p := Proceeds{
		EquityAdjusted: propertyValue - mortgageBalance - otherDebt,
		ClosingCosts:   d.TraditionalClosingCostsPct * propertyValue,
	}

	p.EquityPctAdjusted, p.EquityPctOK = Ratio2(p.EquityAdjusted, propertyValue)

	if active {
		p.AgentFee = d.TraditionalAgentFeePct * propertyValue
	}

	p.CashToSeller = propertyValue - mortgageBalance - otherDebt - p.AgentFee - p.ClosingCosts

	return p
}
