// Package model defines the listing records flowing through the valuation pipeline.
package model

// TagColors lists the colors recognized by downstream table UIs.
var TagColors = []string{
	"pink", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple",
}

// Tag annotates a listing with a categorical label.
type Tag struct {
	Color string `json:"color"`
	Value string `json:"value"`
	Type  string `json:"type"` // always "basic"
}

// NewBasicTag creates a basic tag with the given color and value.
func NewBasicTag(color, value string) Tag {
	return Tag{Color: color, Value: value, Type: "basic"}
}

// ListingStatusActive is the listing status that marks a property as on-market.
// Agent fees and the listing-price valuation shortcut apply only to this status.
const ListingStatusActive = "Active"

// ListingRawData is one property lead as supplied by a data provider.
//
// Numeric fields use 0 to mean "not supplied"; every fallback chain in the
// estimators treats 0 as absent, so providers that report a literal zero and
// providers that omit the field behave identically. Date fields are strings in
// whatever format the provider used; they are parsed leniently where consumed
// and unparseable dates count as absent. The pipeline never mutates this
// struct.
type ListingRawData struct {
	Tags []Tag `json:"tags,omitempty"`

	// Listing
	ListingStatus       string  `json:"listing_status,omitempty"`
	ListingType         string  `json:"listing_type,omitempty"`
	ListingPrice        float64 `json:"listing_price,omitempty"`
	ListingDate         string  `json:"listing_date,omitempty"`
	ListingNumber       string  `json:"listing_number,omitempty"`
	ListingURL          string  `json:"listing_url,omitempty"`
	ListingDaysOnMarket float64 `json:"listing_days_on_market,omitempty"`

	// Brokerage / agent
	BrokerageName  string `json:"brokerage_name,omitempty"`
	BrokeragePhone string `json:"brokerage_phone,omitempty"`
	BrokerageURL   string `json:"brokerage_url,omitempty"`
	AgentFullName  string `json:"agent_full_name,omitempty"`
	AgentEmail     string `json:"agent_email,omitempty"`
	AgentPhone     string `json:"agent_phone,omitempty"`

	// Property identity and characteristics
	PropAddress         string  `json:"prop_address,omitempty"`
	PropFullAddress     string  `json:"prop_full_address,omitempty"`
	PropCity            string  `json:"prop_city,omitempty"`
	PropStateRegion     string  `json:"prop_state_region,omitempty"`
	PropCounty          string  `json:"prop_county,omitempty"`
	PropZipPostalCode   string  `json:"prop_zip_postal_code,omitempty"`
	PropAPN             string  `json:"prop_apn,omitempty"`
	PropType            string  `json:"prop_type,omitempty"`
	PropUse             string  `json:"prop_use,omitempty"`
	PropVacant          string  `json:"prop_vacant,omitempty"`
	PropBedroomsNumber  float64 `json:"prop_bedrooms_number,omitempty"`
	PropBathroomsNumber float64 `json:"prop_bathrooms_number,omitempty"`
	PropBuildingSqft    float64 `json:"prop_building_sqft,omitempty"`
	PropLotSizeSqft     float64 `json:"prop_lot_size_sqft,omitempty"`
	PropYearBuilt       float64 `json:"prop_year_built,omitempty"`

	// Valuation sources
	PropEstValue            float64 `json:"prop_est_value,omitempty"`
	PropEstMarketImprvValue float64 `json:"prop_est_market_imprv_value,omitempty"`
	PropEstMarketLandValue  float64 `json:"prop_est_market_land_value,omitempty"`
	PropEstMarketValue      float64 `json:"prop_est_market_value,omitempty"`
	PropAssessedImprvValue  float64 `json:"prop_assessed_imprv_value,omitempty"`
	PropAssessedLandValue   float64 `json:"prop_assessed_land_value,omitempty"`
	PropAssessedTotalValue  float64 `json:"prop_assessed_total_value,omitempty"`
	PropEstEquity           float64 `json:"prop_est_equity,omitempty"`
	PropEstEquityPercentage float64 `json:"prop_est_equity_percentage,omitempty"`

	// Sale history
	PropLastSaleAmount  float64 `json:"prop_last_sale_amount,omitempty"`
	PropLastSaleDate    string  `json:"prop_last_sale_date,omitempty"`
	PropPriorSaleAmount float64 `json:"prop_prior_sale_amount,omitempty"`
	PropPriorSaleDate   string  `json:"prop_prior_sale_date,omitempty"`

	// Loans (up to four open positions)
	Loan1Balance      float64 `json:"loan1_balance,omitempty"`
	Loan1InterestRate float64 `json:"loan1_interest_rate,omitempty"`
	Loan1OrgAmount    float64 `json:"loan1_org_amount,omitempty"`
	Loan1OrgDate      string  `json:"loan1_org_date,omitempty"`
	Loan1Lender       string  `json:"loan1_lender,omitempty"`
	Loan1Type         string  `json:"loan1_type,omitempty"`
	Loan2Balance      float64 `json:"loan2_balance,omitempty"`
	Loan2InterestRate float64 `json:"loan2_interest_rate,omitempty"`
	Loan2OrgAmount    float64 `json:"loan2_org_amount,omitempty"`
	Loan2OrgDate      string  `json:"loan2_org_date,omitempty"`
	Loan2Lender       string  `json:"loan2_lender,omitempty"`
	Loan3Balance      float64 `json:"loan3_balance,omitempty"`
	Loan3InterestRate float64 `json:"loan3_interest_rate,omitempty"`
	Loan3Lender       string  `json:"loan3_lender,omitempty"`
	Loan4Balance      float64 `json:"loan4_balance,omitempty"`
	Loan4InterestRate float64 `json:"loan4_interest_rate,omitempty"`
	Loan4Lender       string  `json:"loan4_lender,omitempty"`

	// Distress
	ForeclosureStatus        string  `json:"foreclosure_status,omitempty"`
	ForeclosureDefaultAmount float64 `json:"foreclosure_default_amount,omitempty"`
	ForeclosureUnpaidAmount  float64 `json:"foreclosure_unpaid_amount,omitempty"`
	ForeclosureLender        string  `json:"foreclosure_lender,omitempty"`
	ForeclosureRecordingDate string  `json:"foreclosure_recording_date,omitempty"`
	AuctionDate              string  `json:"auction_date,omitempty"`
	LienAmount               float64 `json:"lien_amount,omitempty"`
	LienType                 string  `json:"lien_type,omitempty"`
	LienDate                 string  `json:"lien_date,omitempty"`

	// Owner
	Owner1FullName        string  `json:"owner1_full_name,omitempty"`
	Owner1Email           string  `json:"owner1_email,omitempty"`
	Owner1Phone           string  `json:"owner1_phone,omitempty"`
	Owner2FullName        string  `json:"owner2_full_name,omitempty"`
	OwnerType             string  `json:"owner_type,omitempty"`
	OwnerOccupied         string  `json:"owner_occupied,omitempty"`
	OwnerDeceased         string  `json:"owner_deceased,omitempty"`
	OwnershipLengthMonths float64 `json:"ownership_length_months,omitempty"`

	// Mailing
	MailingFullAddress   string `json:"mailing_full_address,omitempty"`
	MailingCity          string `json:"mailing_city,omitempty"`
	MailingStateRegion   string `json:"mailing_state_region,omitempty"`
	MailingZipPostalCode string `json:"mailing_zip_postal_code,omitempty"`
	MailingDoNotMail     string `json:"mailing_do_not_mail,omitempty"`
}

// IsActive reports whether the listing is actively on-market.
func (l *ListingRawData) IsActive() bool {
	return l.ListingStatus == ListingStatusActive
}
