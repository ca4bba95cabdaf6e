package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		`Listing Status,Listing Price,Prop Address,Loan 1 Balance,Prop Last Sale Date,Unknown Column`,
		`Active,"$300,000",123 Main St,150000,2020-06-15,whatever`,
		`Pending,250000,456 Oak Ave,,2019-01-02,`,
	}, "\n")

	listings, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Active", listings[0].ListingStatus)
	assert.Equal(t, 300000.0, listings[0].ListingPrice)
	assert.Equal(t, "123 Main St", listings[0].PropAddress)
	assert.Equal(t, 150000.0, listings[0].Loan1Balance)
	assert.Equal(t, "2020-06-15", listings[0].PropLastSaleDate)

	assert.Equal(t, "Pending", listings[1].ListingStatus)
	assert.Equal(t, 250000.0, listings[1].ListingPrice)
	assert.Equal(t, 0.0, listings[1].Loan1Balance)
}

func TestReadCSVRaggedRows(t *testing.T) {
	in := "listing_status,listing_price,prop_address\nActive,100000\n"

	listings, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Active", listings[0].ListingStatus)
	assert.Equal(t, 100000.0, listings[0].ListingPrice)
	assert.Empty(t, listings[0].PropAddress)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Listing Price", "listingprice"},
		{"listing_price", "listingprice"},
		{"listingPrice", "listingprice"},
		{"  Loan 1 Balance ", "loan1balance"},
		{"Prop. Est. Value", "propestvalue"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeader(tt.in))
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"100000", 100000},
		{"$300,000", 300000},
		{"$1,234,567.89", 1234567.89},
		{"6.5%", 6.5},
		{"(2500)", -2500},
		{"N/A", 0},
		{"  42  ", 42},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNumber(tt.in))
		})
	}
}
