// Package export writes analysis results as a terminal table, CSV, or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable:
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", eris.Errorf("export: unsupported format %q (want table, csv, or xlsx)", s)
	}
}

// Results writes the listings to w in the requested format.
func Results(w io.Writer, format Format, results []model.ListingFull) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, results)
	case FormatXLSX:
		return writeXLSX(w, results)
	case FormatTable:
		return writeTable(w, results)
	default:
		return eris.Errorf("export: unsupported format %q", format)
	}
}

var moneyPrinter = message.NewPrinter(language.English)

// Currency renders a dollar amount with thousands separators, e.g. $1,234,500.
func Currency(v float64) string {
	return moneyPrinter.Sprintf("$%.0f", v)
}

var csvHeader = []string{
	"address", "city", "state", "zip", "status", "strategy",
	"listing_price", "property_value", "mortgage_balance", "other_debt",
	"seller_proceeds", "new_cash_to_seller", "offer_price",
	"cash_offer_high", "cash_offer_low", "interest_rate", "equity_pct", "notes",
}

func resultRow(r *model.ListingFull) []string {
	return []string{
		r.PropAddress,
		r.PropCity,
		r.PropStateRegion,
		r.PropZipPostalCode,
		r.ListingStatus,
		string(r.AcquisitionStrategy),
		fmt.Sprintf("%.2f", r.ListingPrice),
		fmt.Sprintf("%.2f", r.EstPropertyValue),
		fmt.Sprintf("%.2f", r.EstMortgageBalance),
		fmt.Sprintf("%.2f", r.EstOtherDebtBalance),
		fmt.Sprintf("%.2f", r.EstCashToSeller),
		fmt.Sprintf("%.2f", r.NewCashToSeller),
		fmt.Sprintf("%.2f", r.OfferPrice),
		fmt.Sprintf("%.2f", r.CashOfferHigh),
		fmt.Sprintf("%.2f", r.CashOfferLow),
		fmt.Sprintf("%.4f", r.Loan1InterestRate),
		fmt.Sprintf("%.4f", r.EstEquityPctAdjusted),
		r.Note,
	}
}

func writeCSV(w io.Writer, results []model.ListingFull) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}
	for i := range results {
		if err := cw.Write(resultRow(&results[i])); err != nil {
			return eris.Wrap(err, "export: write CSV row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush CSV")
}

func writeTable(w io.Writer, results []model.ListingFull) error {
	header := fmt.Sprintf("%-40s %-5s %-16s %14s %14s %14s %14s\n",
		"Address", "St", "Strategy", "List Price", "Value", "Cash/Seller", "Offer")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "export: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 122)); err != nil {
		return eris.Wrap(err, "export: write table separator")
	}

	for i := range results {
		r := &results[i]
		addr := r.PropAddress
		if len(addr) > 40 {
			addr = addr[:37] + "..."
		}
		line := fmt.Sprintf("%-40s %-5s %-16s %14s %14s %14s %14s\n",
			addr, r.PropStateRegion, r.AcquisitionStrategy,
			Currency(r.ListingPrice), Currency(r.EstPropertyValue),
			Currency(r.NewCashToSeller), Currency(r.OfferPrice))
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "export: write table row")
		}
	}
	return nil
}

func writeXLSX(w io.Writer, results []model.ListingFull) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Offers")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	hr := sheet.AddRow()
	for _, h := range csvHeader {
		hr.AddCell().SetString(h)
	}
	for i := range results {
		row := sheet.AddRow()
		for _, v := range resultRow(&results[i]) {
			row.AddCell().SetString(v)
		}
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

// PrintSummary writes a run summary block after the result listing.
func PrintSummary(w io.Writer, summary *model.RunSummary) {
	if summary == nil || summary.Listings == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	fmt.Fprintf(w, "\n--- Summary ---\n")
	fmt.Fprintf(w, "Listings analyzed: %d\n", summary.Listings)
	fmt.Fprintf(w, "Failed:            %d\n", summary.Failed)
	for _, s := range []model.AcquisitionStrategy{
		model.StrategySubjectTo, model.StrategyHybrid,
		model.StrategySellerFinancing, model.StrategyOther, model.StrategyProblem,
	} {
		if n := summary.Strategies[s]; n > 0 {
			fmt.Fprintf(w, "%-18s %d\n", string(s)+":", n)
		}
	}
}
