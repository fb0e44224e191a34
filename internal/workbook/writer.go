package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX writes a single-sheet workbook with header as the first row.
// An empty sheetName keeps the default "Sheet1".
func WriteXLSX(w io.Writer, sheetName string, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if sheetName != "" && sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
		sheet = sheetName
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}

	all := append([][]interface{}{headerRow}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
