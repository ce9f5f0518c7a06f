package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"marksheet/domain/sheet"
)

const outputSheet = "Sheet1"

// BuildWorkbook renders a table into an in-memory workbook: header on
// row 1, data rows after, columns auto-sized to their widest cell. The
// caller owns closing the returned file.
func BuildWorkbook(t *sheet.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, h := range t.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell %d: %w", i, err)
		}
		if err := f.SetCellValue(outputSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell (%d,%d): %w", c, r, err)
			}
			if err := f.SetCellValue(outputSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	autoSizeColumns(f, t)
	return f, nil
}

// autoSizeColumns widens each column to its longest rendered value.
// Purely cosmetic; sizing failures are ignored.
func autoSizeColumns(f *excelize.File, t *sheet.Table) {
	for i, h := range t.Header {
		max := len(h)
		for _, row := range t.Rows {
			if i < len(row) {
				if n := len(fmt.Sprintf("%v", row[i])); n > max {
					max = n
				}
			}
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(outputSheet, name, name, float64(max+2))
	}
}
