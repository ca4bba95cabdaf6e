// Package estimate derives property value and debt figures from the raw
// listing record via fixed fallback chains.
package estimate

import (
	"math"
	"time"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// annualAppreciationRate projects a past sale price forward to today.
const annualAppreciationRate = 1.03

// PropertyValue derives a single estimated property value from the best
// available source. First applicable rule wins:
//
//  1. Active listing with a price: the listing price.
//  2. Last sale amount and date: sale amount appreciated 3%/yr over whole
//     calendar years between the sale and asOf.
//  3. Provider's estimated value.
//  4. Market improvement + land value, when their sum is positive.
//  5. Assessed improvement + land value (either side alone counts).
//
// All sources missing yields 0, which is a valid degenerate result; callers
// dividing by it must guard.
func PropertyValue(l *model.ListingRawData, asOf time.Time) float64 {
	if l.IsActive() && l.ListingPrice != 0 {
		return l.ListingPrice
	}

	if l.PropLastSaleAmount != 0 {
		if saleDate, ok := ParseDate(l.PropLastSaleDate); ok {
			years := asOf.Year() - saleDate.Year()
			return l.PropLastSaleAmount * math.Pow(annualAppreciationRate, float64(years))
		}
	}

	if l.PropEstValue != 0 {
		return l.PropEstValue
	}

	if l.PropEstMarketImprvValue != 0 || l.PropEstMarketLandValue != 0 {
		if v := l.PropEstMarketImprvValue + l.PropEstMarketLandValue; v > 0 {
			return v
		}
	}

	if l.PropAssessedImprvValue != 0 || l.PropAssessedLandValue != 0 {
		return l.PropAssessedImprvValue + l.PropAssessedLandValue
	}

	return 0
}
