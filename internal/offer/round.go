// Package offer computes seller proceeds, the policy-bounded cash-to-seller
// figure, the offer price, and the derived deal metrics.
package offer

import "math"

// FloorTo rounds v down to the nearest multiple of unit.
func FloorTo(v, unit float64) float64 {
	return math.Floor(v/unit) * unit
}

// CeilTo rounds v up to the nearest multiple of unit.
func CeilTo(v, unit float64) float64 {
	return math.Ceil(v/unit) * unit
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ratio2 returns num/den rounded to two decimals. A zero denominator yields
// (0, false) so callers can surface the indeterminate ratio instead of
// propagating NaN or Inf.
func Ratio2(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return Round2(num / den), true
}
