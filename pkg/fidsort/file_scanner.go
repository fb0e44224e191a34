package fidsort

// FileScanner discovers and classifies spreadsheets under a root directory.
// Implementations must not modify the filesystem.
type FileScanner interface {
	// ScanDirectory lists the spreadsheets under rootPath and classifies each.
	// When deepScan is false only direct children of rootPath are considered.
	// Returns an error wrapping ErrInvalidInput when rootPath is not a directory.
	ScanDirectory(rootPath string, deepScan bool) (ScanResult, error)
}

// Relocator moves Ready records into per-identifier directories under a root.
type Relocator interface {
	// Relocate processes files in order and returns exactly one outcome per
	// input record. Per-file failures are reported in the outcome, not as an
	// error; the error is reserved for missing arguments.
	Relocate(rootPath string, files []FileRecord) (RelocationResult, error)
}
