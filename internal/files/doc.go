// Package files groups the filesystem-facing parts of fidsort.
//
// Sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: spreadsheet discovery and classification by identifier
//   - relocator: moves classified spreadsheets into per-identifier folders
//   - dirlist: one-level directory listings for folder pickers
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fidsort/internal/files/relocator"
//	    "github.com/vvka-141/fidsort/internal/files/scanner"
//	    "github.com/vvka-141/fidsort/internal/workbook"
//	)
//
//	s := scanner.NewScanner(workbook.NewReader(), logger)
//	result, err := s.ScanDirectory("/data/inbox", true)
//
//	r := relocator.NewRelocator(logger)
//	outcomes, err := r.Relocate("/data/inbox", result.Files)
package files
