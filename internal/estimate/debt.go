package estimate

import "github.com/loi-rocket/dealflow-cli/internal/model"

// OtherDebt sums secondary obligations against the property: the foreclosure
// default amount and any recorded lien. Missing fields count as 0; there is no
// fallback chain.
func OtherDebt(l *model.ListingRawData) float64 {
	return l.ForeclosureDefaultAmount + l.LienAmount
}
