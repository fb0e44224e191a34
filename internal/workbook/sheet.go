package workbook

import (
	"strconv"
	"strings"
)

// Field is one named value of a record row.
type Field struct {
	Name  string
	Value string
}

// Sheet is the header and first record row of a workbook's first sheet.
type Sheet struct {
	// Name is the sheet name as declared in the workbook.
	Name string

	// Header holds the resolved field name for every column.
	Header []string

	// Record holds the fields of the first data row in column order.
	// Columns with no value in that row are absent.
	Record []Field
}

// HasData reports whether the sheet has at least one data row.
func (s Sheet) HasData() bool {
	return len(s.Record) > 0
}

// Find returns the first field, in column order, whose name contains
// substr case-insensitively.
func (s Sheet) Find(substr string) (Field, bool) {
	needle := strings.ToLower(substr)
	for _, f := range s.Record {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			return f, true
		}
	}
	return Field{}, false
}

// resolveHeader names every column of the header row, up to width columns.
func resolveHeader(cells []string, width int) []string {
	if width < len(cells) {
		width = len(cells)
	}

	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		base := ""
		if i < len(cells) {
			base = cells[i]
		}
		if base == "" {
			base = "__EMPTY"
		}

		name := base
		if counter := seen[base]; counter == 0 {
			seen[base] = 1
		} else {
			for {
				name = base + "_" + strconv.Itoa(counter)
				counter++
				if seen[name] == 0 {
					break
				}
			}
			seen[base] = counter
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}

// buildRecord pairs the header with the non-empty cells of row.
func buildRecord(header []string, row []string) []Field {
	var fields []Field
	for i, v := range row {
		if v == "" || i >= len(header) {
			continue
		}
		fields = append(fields, Field{Name: header[i], Value: v})
	}
	return fields
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// rowSource yields the rows of one sheet in order.
type rowSource interface {
	Next() bool
	Columns() ([]string, error)
}

// firstRecord consumes rows until it has the header and the first data row.
func firstRecord(name string, rows rowSource) (Sheet, error) {
	sheet := Sheet{Name: name}

	var header []string
	haveHeader := false
	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return Sheet{}, err
		}
		if isBlank(cells) {
			continue
		}
		if !haveHeader {
			header = cells
			haveHeader = true
			continue
		}
		sheet.Header = resolveHeader(header, len(cells))
		sheet.Record = buildRecord(sheet.Header, cells)
		return sheet, nil
	}

	if haveHeader {
		sheet.Header = resolveHeader(header, len(header))
	}
	return sheet, nil
}
