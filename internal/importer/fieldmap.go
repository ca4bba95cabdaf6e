// Package importer parses lead files (CSV, XLSX) into listing records.
package importer

import (
	"strconv"
	"strings"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// setter assigns one cell value to its field on the listing.
type setter func(l *model.ListingRawData, v string)

func num(assign func(l *model.ListingRawData, f float64)) setter {
	return func(l *model.ListingRawData, v string) {
		assign(l, parseNumber(v))
	}
}

func str(assign func(l *model.ListingRawData, s string)) setter {
	return func(l *model.ListingRawData, v string) {
		assign(l, strings.TrimSpace(v))
	}
}

// fieldSetters maps normalized column headers to field setters. Both the
// snake_case export names and the provider's human headers ("Listing Price",
// "Loan 1 Balance") normalize to the same key.
var fieldSetters = map[string]setter{
	"listingstatus":       str(func(l *model.ListingRawData, s string) { l.ListingStatus = s }),
	"listingtype":         str(func(l *model.ListingRawData, s string) { l.ListingType = s }),
	"listingprice":        num(func(l *model.ListingRawData, f float64) { l.ListingPrice = f }),
	"listingdate":         str(func(l *model.ListingRawData, s string) { l.ListingDate = s }),
	"listingnumber":       str(func(l *model.ListingRawData, s string) { l.ListingNumber = s }),
	"listingurl":          str(func(l *model.ListingRawData, s string) { l.ListingURL = s }),
	"listingdaysonmarket": num(func(l *model.ListingRawData, f float64) { l.ListingDaysOnMarket = f }),

	"brokeragename": str(func(l *model.ListingRawData, s string) { l.BrokerageName = s }),
	"agentfullname": str(func(l *model.ListingRawData, s string) { l.AgentFullName = s }),
	"agentemail":    str(func(l *model.ListingRawData, s string) { l.AgentEmail = s }),
	"agentphone":    str(func(l *model.ListingRawData, s string) { l.AgentPhone = s }),

	"propaddress":       str(func(l *model.ListingRawData, s string) { l.PropAddress = s }),
	"propfulladdress":   str(func(l *model.ListingRawData, s string) { l.PropFullAddress = s }),
	"propcity":          str(func(l *model.ListingRawData, s string) { l.PropCity = s }),
	"propstateregion":   str(func(l *model.ListingRawData, s string) { l.PropStateRegion = s }),
	"propcounty":        str(func(l *model.ListingRawData, s string) { l.PropCounty = s }),
	"propzippostalcode": str(func(l *model.ListingRawData, s string) { l.PropZipPostalCode = s }),
	"propapn":           str(func(l *model.ListingRawData, s string) { l.PropAPN = s }),
	"proptype":          str(func(l *model.ListingRawData, s string) { l.PropType = s }),
	"propvacant":        str(func(l *model.ListingRawData, s string) { l.PropVacant = s }),
	"propbedroomsnumber":  num(func(l *model.ListingRawData, f float64) { l.PropBedroomsNumber = f }),
	"propbathroomsnumber": num(func(l *model.ListingRawData, f float64) { l.PropBathroomsNumber = f }),
	"propbuildingsqft":    num(func(l *model.ListingRawData, f float64) { l.PropBuildingSqft = f }),
	"proplotsizesqft":     num(func(l *model.ListingRawData, f float64) { l.PropLotSizeSqft = f }),
	"propyearbuilt":       num(func(l *model.ListingRawData, f float64) { l.PropYearBuilt = f }),

	"propestvalue":            num(func(l *model.ListingRawData, f float64) { l.PropEstValue = f }),
	"propestmarketimprvvalue": num(func(l *model.ListingRawData, f float64) { l.PropEstMarketImprvValue = f }),
	"propestmarketlandvalue":  num(func(l *model.ListingRawData, f float64) { l.PropEstMarketLandValue = f }),
	"propestmarketvalue":      num(func(l *model.ListingRawData, f float64) { l.PropEstMarketValue = f }),
	"propassessedimprvvalue":  num(func(l *model.ListingRawData, f float64) { l.PropAssessedImprvValue = f }),
	"propassessedlandvalue":   num(func(l *model.ListingRawData, f float64) { l.PropAssessedLandValue = f }),
	"propassessedtotalvalue":  num(func(l *model.ListingRawData, f float64) { l.PropAssessedTotalValue = f }),

	"proplastsaleamount":  num(func(l *model.ListingRawData, f float64) { l.PropLastSaleAmount = f }),
	"proplastsaledate":    str(func(l *model.ListingRawData, s string) { l.PropLastSaleDate = s }),
	"proppriorsaleamount": num(func(l *model.ListingRawData, f float64) { l.PropPriorSaleAmount = f }),
	"proppriorsaledate":   str(func(l *model.ListingRawData, s string) { l.PropPriorSaleDate = s }),

	"loan1balance":      num(func(l *model.ListingRawData, f float64) { l.Loan1Balance = f }),
	"loan1interestrate": num(func(l *model.ListingRawData, f float64) { l.Loan1InterestRate = f }),
	"loan1orgamount":    num(func(l *model.ListingRawData, f float64) { l.Loan1OrgAmount = f }),
	"loan1orgdate":      str(func(l *model.ListingRawData, s string) { l.Loan1OrgDate = s }),
	"loan1lender":       str(func(l *model.ListingRawData, s string) { l.Loan1Lender = s }),
	"loan1type":         str(func(l *model.ListingRawData, s string) { l.Loan1Type = s }),
	"loan2balance":      num(func(l *model.ListingRawData, f float64) { l.Loan2Balance = f }),
	"loan2interestrate": num(func(l *model.ListingRawData, f float64) { l.Loan2InterestRate = f }),
	"loan2lender":       str(func(l *model.ListingRawData, s string) { l.Loan2Lender = s }),
	"loan3balance":      num(func(l *model.ListingRawData, f float64) { l.Loan3Balance = f }),
	"loan3lender":       str(func(l *model.ListingRawData, s string) { l.Loan3Lender = s }),
	"loan4balance":      num(func(l *model.ListingRawData, f float64) { l.Loan4Balance = f }),
	"loan4lender":       str(func(l *model.ListingRawData, s string) { l.Loan4Lender = s }),

	"foreclosurestatus":        str(func(l *model.ListingRawData, s string) { l.ForeclosureStatus = s }),
	"foreclosuredefaultamount": num(func(l *model.ListingRawData, f float64) { l.ForeclosureDefaultAmount = f }),
	"foreclosureunpaidamount":  num(func(l *model.ListingRawData, f float64) { l.ForeclosureUnpaidAmount = f }),
	"foreclosurelender":        str(func(l *model.ListingRawData, s string) { l.ForeclosureLender = s }),
	"auctiondate":              str(func(l *model.ListingRawData, s string) { l.AuctionDate = s }),
	"lienamount":               num(func(l *model.ListingRawData, f float64) { l.LienAmount = f }),
	"lientype":                 str(func(l *model.ListingRawData, s string) { l.LienType = s }),
	"liendate":                 str(func(l *model.ListingRawData, s string) { l.LienDate = s }),

	"owner1fullname":        str(func(l *model.ListingRawData, s string) { l.Owner1FullName = s }),
	"owner1email":           str(func(l *model.ListingRawData, s string) { l.Owner1Email = s }),
	"owner1phone":           str(func(l *model.ListingRawData, s string) { l.Owner1Phone = s }),
	"owner2fullname":        str(func(l *model.ListingRawData, s string) { l.Owner2FullName = s }),
	"ownertype":             str(func(l *model.ListingRawData, s string) { l.OwnerType = s }),
	"owneroccupied":         str(func(l *model.ListingRawData, s string) { l.OwnerOccupied = s }),
	"ownershiplengthmonths": num(func(l *model.ListingRawData, f float64) { l.OwnershipLengthMonths = f }),

	"mailingfulladdress":   str(func(l *model.ListingRawData, s string) { l.MailingFullAddress = s }),
	"mailingcity":          str(func(l *model.ListingRawData, s string) { l.MailingCity = s }),
	"mailingstateregion":   str(func(l *model.ListingRawData, s string) { l.MailingStateRegion = s }),
	"mailingzippostalcode": str(func(l *model.ListingRawData, s string) { l.MailingZipPostalCode = s }),
}

// normalizeHeader reduces a column header to lowercase alphanumerics so that
// "Listing Price", "listing_price", and "listingPrice" all match.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumber parses a provider numeric cell. Currency symbols, thousands
// separators, and percent signs are stripped; anything still malformed parses
// to 0, matching the pipeline's zero-means-absent rule.
func parseNumber(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	v = strings.NewReplacer("$", "", ",", "", "%", "", "(", "-", ")", "").Replace(v)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// bindRow maps one data row onto a listing using the header positions.
func bindRow(headers []string, row []string) model.ListingRawData {
	var l model.ListingRawData
	for i, h := range headers {
		if i >= len(row) {
			break
		}
		if set, ok := fieldSetters[h]; ok && row[i] != "" {
			set(&l, row[i])
		}
	}
	return l
}

// normalizeHeaders applies normalizeHeader to every column.
func normalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = normalizeHeader(h)
	}
	return out
}
