package estimate

import (
	"math"
	"time"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// Assumptions for the amortization projection used when no loan balances are
// disclosed. These model a conventional purchase at the last sale.
const (
	assumedDownPaymentPct = 0.20
	assumedAnnualRate     = 0.04
	assumedTermMonths     = 30 * 12
)

// MortgageBalance derives the outstanding primary-loan balance.
//
// Disclosed balances win: the sum of the four loan slots is returned whenever
// it is positive. Otherwise, if the property has a last sale on record, the
// balance is projected by simulating a 30-year fixed loan at 4% with 20% down,
// amortized month by month from the sale date to asOf. The projection is an
// approximation of payoff for listings lacking disclosed balances, not
// observed data. With no sale on record either, the balance is 0.
func MortgageBalance(l *model.ListingRawData, asOf time.Time) float64 {
	totalOpenLoans := l.Loan1Balance + l.Loan2Balance + l.Loan3Balance + l.Loan4Balance
	if totalOpenLoans > 0 {
		return totalOpenLoans
	}

	if l.PropLastSaleAmount != 0 {
		if saleDate, ok := ParseDate(l.PropLastSaleDate); ok {
			return projectAmortizedBalance(l.PropLastSaleAmount, saleDate, asOf)
		}
	}

	return 0
}

// projectAmortizedBalance runs the fixed-payment amortization schedule from
// the sale date to asOf and returns the remaining principal.
//
// The balance is reduced iteratively rather than via the closed-form
// remaining-balance formula so results stay bit-compatible with the reference
// schedule.
func projectAmortizedBalance(saleAmount float64, saleDate, asOf time.Time) float64 {
	principal := saleAmount * (1 - assumedDownPaymentPct)
	monthlyRate := assumedAnnualRate / 12

	growth := math.Pow(1+monthlyRate, assumedTermMonths)
	monthlyPayment := principal * monthlyRate * growth / (growth - 1)

	// Fractional years from calendar component deltas, truncated to whole
	// months of elapsed schedule.
	years := float64(asOf.Year()-saleDate.Year()) +
		float64(int(asOf.Month())-int(saleDate.Month()))/12 +
		float64(asOf.Day()-saleDate.Day())/365
	elapsedMonths := int(math.Floor(years * 12))

	balance := principal
	for i := 0; i < elapsedMonths; i++ {
		interest := balance * monthlyRate
		balance -= monthlyPayment - interest
	}

	return balance
}
