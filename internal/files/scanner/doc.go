// Package scanner discovers spreadsheets and classifies them by identifier.
//
// The scanner package is responsible for:
//   - Listing .xlsx/.xls files directly under a root, or at any depth
//   - Excluding editor lock files (~$ prefix)
//   - Extracting the identifier ("fid") and display name ("name") fields
//     from the first data row of each workbook
//   - Deciding whether a file is Ready to move or Already Sorted
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface and never modifies the tree it scans.
package scanner
