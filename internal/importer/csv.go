package importer

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// ReadCSV parses a lead CSV. The first row is the header; unknown columns are
// ignored so provider exports can carry whatever extras they like.
func ReadCSV(r io.Reader) ([]model.ListingRawData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // provider exports have ragged rows
	reader.LazyQuotes = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("importer: empty CSV")
	}
	if err != nil {
		return nil, eris.Wrap(err, "importer: read CSV header")
	}
	headers := normalizeHeaders(headerRow)

	var listings []model.ListingRawData
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "importer: read CSV row")
		}
		listings = append(listings, bindRow(headers, row))
	}

	zap.L().Info("importer: CSV parsed", zap.Int("listings", len(listings)))
	return listings, nil
}
