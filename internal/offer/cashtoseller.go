package offer

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/loi-rocket/dealflow-cli/internal/config"
)

// NewCashToSeller maps raw seller proceeds through the configured policy to a
// bounded, optionally rounded cash figure the offer can actually carry.
//
// The ceiling comes from the cash-to-seller option (Standard uses the
// configured maximum; Aggressive and Conservative scale it by the factor and
// snap to the rounding unit). The floor is the smallest tier payout. Positive
// proceeds are capped at the ceiling; zero proceeds take the first tier's
// payout; negative proceeds take the payout of the first tier whose minimum
// covers them, falling back to the last tier. The policy multiplier and
// rounding are then applied, and the result is clamped into [floor, ceiling].
//
// A total function of its inputs: same proceeds and settings always produce
// the same figure.
func NewCashToSeller(estCashToSeller float64, d *config.DealConfig) (float64, error) {
	var ceiling float64
	switch d.CashToSellerOption {
	case config.CashToSellerStandard:
		ceiling = d.MaxStandardCashToSeller
	case config.CashToSellerAggressive:
		ceiling = CeilTo(d.MaxStandardCashToSeller*d.CashToSellerFactor, d.RoundingFactor)
	case config.CashToSellerConservative:
		ceiling = FloorTo(d.MaxStandardCashToSeller*(2-d.CashToSellerFactor), d.RoundingFactor)
	default:
		return 0, eris.Errorf("offer: invalid cash to seller option %q", d.CashToSellerOption)
	}

	if len(d.NegativeTiers) == 0 {
		return 0, eris.New("offer: no negative tiers configured")
	}

	floor := math.Inf(1)
	for _, tier := range d.NegativeTiers {
		floor = math.Min(floor, tier.Value)
	}

	var result float64
	switch {
	case estCashToSeller > 0:
		result = math.Min(ceiling, estCashToSeller)
	case estCashToSeller == 0:
		result = d.NegativeTiers[0].Value
	default:
		// Tiers run from least-negative to most-negative; first match wins.
		result = d.NegativeTiers[len(d.NegativeTiers)-1].Value
		for _, tier := range d.NegativeTiers {
			if estCashToSeller >= tier.Min {
				result = tier.Value
				break
			}
		}
	}

	switch d.CashToSellerOption {
	case config.CashToSellerConservative:
		result *= 2 - d.CashToSellerFactor
	case config.CashToSellerAggressive:
		result *= d.CashToSellerFactor
	}

	if d.RoundValues {
		if d.CashToSellerOption == config.CashToSellerAggressive {
			result = CeilTo(result, d.RoundingFactor)
		} else {
			result = FloorTo(result, d.RoundingFactor)
		}
	}

	return math.Max(floor, math.Min(ceiling, result)), nil
}
