package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DataReader decodes an Excel or CSV marksheet into the raw table shape
// the pipeline consumes: no header row assumed, every row padded to the
// widest row. It implements ports.TableSource.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file, picking the decode
// path from the file extension.
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the file into a rectangular raw table.
func (r *DataReader) ReadTable() ([][]any, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVTable()
	default:
		return r.readExcelTable()
	}
}

// readExcelTable reads the first sheet of the workbook.
func (r *DataReader) readExcelTable() ([][]any, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q contains no rows", sheets[0])
	}

	log.Printf("[DataReader] Sheet %q read (%d rows)", sheets[0], len(rows))
	return padToRectangle(rows), nil
}

// readCSVTable reads a delimited text file. encoding/csv enforces a
// consistent field count per record, so a ragged file fails the run.
func (r *DataReader) readCSVTable() ([][]any, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file contains no rows")
	}

	log.Printf("[DataReader] CSV file read (%d rows)", len(rows))
	return padToRectangle(rows), nil
}

// padToRectangle converts string rows to cell rows, padding short rows
// with empty cells. Excel readers drop trailing empty cells, so rows
// come back ragged even from a rectangular sheet.
func padToRectangle(rows [][]string) [][]any {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, width)
		for j := range cells {
			if j < len(row) {
				cells[j] = row[j]
			} else {
				cells[j] = ""
			}
		}
		table[i] = cells
	}
	return table
}
