// Package workbook reads the identifying row of spreadsheet files.
//
// Only the first sheet in declared order is consulted. Its first non-empty
// row is the header; the first non-empty row after it is the record row.
// Field names follow the usual spreadsheet-to-object conventions:
//   - empty header cells are named "__EMPTY", "__EMPTY_1", ...
//   - repeated header names get "_1", "_2", ... suffixes
//   - a field exists only when the record row has a value in that column
//
// Cell values are read raw, so numbers and dates appear unformatted
// (1001 reads as "1001").
//
// Supported formats:
//   - .xlsx via github.com/xuri/excelize/v2
//   - .xls  via github.com/extrame/xls
package workbook
