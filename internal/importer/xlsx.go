package importer

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// XLSXOptions configures the XLSX lead parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSX parses a lead workbook. Row 0 of the chosen sheet is the header.
func ReadXLSX(path string, opts XLSXOptions) ([]model.ListingRawData, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("importer: sheet %q is empty", sheet.Name)
	}

	headers := normalizeHeaders(rowToStrings(sheet.Rows[0]))

	var listings []model.ListingRawData
	for _, row := range sheet.Rows[1:] {
		listings = append(listings, bindRow(headers, rowToStrings(row)))
	}

	zap.L().Info("importer: XLSX parsed",
		zap.String("sheet", sheet.Name),
		zap.Int("listings", len(listings)),
	)
	return listings, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("importer: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("importer: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
