// Package strategy classifies a listing into an acquisition strategy and
// annotates records that need operator attention.
package strategy

import "github.com/loi-rocket/dealflow-cli/internal/model"

// Classify picks the acquisition strategy from seller proceeds, the
// policy-adjusted cash figure, and the total open debt. First match wins:
//
//  1. Proceeds above the cash figure with no debt: the seller can carry the
//     whole deal -> Seller Financing.
//  2. Proceeds at least 1.5x the cash figure with debt: Seller Financing when
//     the debt is nearly paid off (below cash figure minus $5,000), else
//     Hybrid.
//  3. Proceeds between 1x and 2x the cash figure with debt -> Subject To.
//  4. Proceeds below the cash figure with debt -> Subject To.
//  5. Anything else -> Other.
//
// Total over all inputs: always returns one of the four labels above, never
// Problem (that label is applied only by note annotation, see Annotate).
func Classify(estCashToSeller, newCashToSeller, totalDebtBalance float64) model.AcquisitionStrategy {
	switch {
	case estCashToSeller > newCashToSeller && totalDebtBalance == 0:
		return model.StrategySellerFinancing

	case estCashToSeller >= 1.5*newCashToSeller && totalDebtBalance > 0:
		if totalDebtBalance < newCashToSeller-5000 {
			return model.StrategySellerFinancing
		}
		return model.StrategyHybrid

	case estCashToSeller >= newCashToSeller && estCashToSeller <= 2*newCashToSeller && totalDebtBalance > 0:
		return model.StrategySubjectTo

	case estCashToSeller < newCashToSeller && totalDebtBalance > 0:
		return model.StrategySubjectTo

	default:
		return model.StrategyOther
	}
}
