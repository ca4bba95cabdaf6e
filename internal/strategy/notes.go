package strategy

import (
	"strings"

	"github.com/loi-rocket/dealflow-cli/internal/config"
	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// Operator-facing note texts, inherited verbatim from the review workflow the
// deal desk already runs.
const (
	NoteProblemUpsideDown = "Problem - possibly upside down, a short-sale, the listing price is incorrect, or the loan balance is incorrect. Further exploration is required."
	NoteLoanNearPayoff    = "Loan balance may be paid off or close to it. Requires further exploration or some creative negotiating to be 100% Seller Financing."
	NoteMaxInterestRate   = "Exceeded Maximum Interest Rate"
	NoteMaxEquityPct      = "Exceeded Maximum Equity Percentage"
	NoteIndeterminate     = "Estimated property value is 0; percentage metrics are indeterminate."
)

// AnnotateInputs carries the computed figures the annotation pass inspects.
type AnnotateInputs struct {
	Strategy         model.AcquisitionStrategy
	OfferPrice       float64
	ListingPrice     float64
	NewCashToSeller  float64
	TotalDebt        float64
	EquityPctAdj     float64
	Loan1Rate        float64
	DegenerateRatios bool
}

// Annotation is the result of the review pass: the note text and whether the
// record warrants a Problem tag.
type Annotation struct {
	Note    string
	Problem bool
}

// Annotate flags records the operator should look at before sending a letter
// of intent. It never changes the strategy label; it only attaches notes, and
// marks the record as a problem when the offer exceeds the asking price.
func Annotate(in AnnotateInputs, d *config.DealConfig) Annotation {
	var notes []string
	var problem bool

	if in.ListingPrice > 0 && in.OfferPrice > in.ListingPrice {
		notes = append(notes, NoteProblemUpsideDown)
		problem = true
	} else if in.TotalDebt > 0 && in.TotalDebt < in.NewCashToSeller-5000 {
		notes = append(notes, NoteLoanNearPayoff)
	}

	if d.MaxInterestRatePct > 0 && in.Loan1Rate > d.MaxInterestRatePct {
		notes = append(notes, NoteMaxInterestRate)
	}

	if (in.Strategy == model.StrategySubjectTo || in.Strategy == model.StrategyHybrid) &&
		d.MaxEquityPct > 0 && in.EquityPctAdj > d.MaxEquityPct {
		notes = append(notes, NoteMaxEquityPct)
	}

	if in.DegenerateRatios {
		notes = append(notes, NoteIndeterminate)
	}

	return Annotation{
		Note:    strings.Join(notes, " "),
		Problem: problem,
	}
}
