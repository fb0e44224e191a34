package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file names without a known
// spreadsheet extension.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Reader extracts the first record of a workbook.
// Implementations must be safe for concurrent use.
type Reader interface {
	// FirstRecord parses content as the workbook named fileName.
	// The extension of fileName selects the format.
	FirstRecord(fileName string, content []byte) (Sheet, error)
}

// FormatReader dispatches on file extension to the xlsx or xls parser.
type FormatReader struct{}

// NewReader returns the default Reader.
func NewReader() *FormatReader {
	return &FormatReader{}
}

// FirstRecord implements Reader. Parser panics on malformed input are
// returned as errors.
func (r *FormatReader) FirstRecord(fileName string, content []byte) (sheet Sheet, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			sheet = Sheet{}
			err = fmt.Errorf("parse %s: %v", fileName, rec)
		}
	}()

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return readXLSX(content)
	case ".xls":
		return readXLS(content)
	default:
		return Sheet{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

func readXLSX(content []byte) (Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, errors.New("workbook has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	defer rows.Close()

	return firstRecord(sheets[0], &xlsxRows{rows: rows})
}

type xlsxRows struct {
	rows *excelize.Rows
}

func (r *xlsxRows) Next() bool { return r.rows.Next() }

func (r *xlsxRows) Columns() ([]string, error) {
	return r.rows.Columns(excelize.Options{RawCellValue: true})
}

func readXLS(content []byte) (Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return Sheet{}, errors.New("workbook has no sheets")
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return Sheet{}, errors.New("workbook has no readable first sheet")
	}

	return firstRecord(ws.Name, &xlsRows{sheet: ws, next: -1})
}

// xlsMaxColumns is the BIFF8 column limit.
const xlsMaxColumns = 256

type xlsRows struct {
	sheet *xls.WorkSheet
	next  int
}

func (r *xlsRows) Next() bool {
	r.next++
	return r.next <= int(r.sheet.MaxRow)
}

// Columns reads the current row cell by cell. Writers that omit ROW records
// leave the row's column bounds at zero, so the width is taken from the last
// non-empty cell instead.
func (r *xlsRows) Columns() ([]string, error) {
	row := r.row()
	if row == nil {
		return nil, nil
	}

	cells := make([]string, xlsMaxColumns)
	width := 0
	for c := range cells {
		cells[c] = row.Col(c)
		if cells[c] != "" {
			width = c + 1
		}
	}
	return cells[:width], nil
}

// row returns nil for rows without cells; xls.WorkSheet.Row dereferences
// the missing entry.
func (r *xlsRows) row() (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return r.sheet.Row(r.next)
}

var _ Reader = (*FormatReader)(nil)
