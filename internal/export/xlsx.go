// internal/export/xlsx.go
//
// Spreadsheet variant of the exporter, for staff who open the dumps in
// Excel directly.  Same column discipline as CSV: header row from the
// first record, one row per record, first-record key order.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

// XLSX serializes records into a single-sheet workbook.  An empty
// collection yields a workbook with just the empty sheet.
func XLSX(sheet string, records []content.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	if len(records) > 0 {
		header := make([]any, len(records[0].Columns()))
		for i, h := range records[0].Columns() {
			header[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, fmt.Errorf("export: header row: %w", err)
		}

		for n, rec := range records {
			row := make([]any, len(rec.Values()))
			for i, v := range rec.Values() {
				row[i] = v
			}
			cell, _ := excelize.CoordinatesToCellName(1, n+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("export: row %d: %w", n+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
