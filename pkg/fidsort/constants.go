package fidsort

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid fidsort.yaml or environment overrides
	ExitApprovalDenied = 12 // User declined the relocation prompt
	ExitInvalidInput   = 15 // Root path missing, not a directory, or no files given
	ExitPartialFailure = 16 // At least one file could not be relocated
)

const (
	// UnknownName is the display name used when a workbook carries an
	// identifier column but no name column.
	UnknownName = "Unknown"

	// IdentifierField is the case-insensitive substring that marks the
	// identifier column in a workbook header.
	IdentifierField = "fid"

	// NameField is the case-insensitive substring that marks the display
	// name column in a workbook header.
	NameField = "name"

	// LockFilePrefix marks the transient owner files spreadsheet editors
	// create next to an open document. They are never classified.
	LockFilePrefix = "~$"

	// TargetExtension is the extension every relocated file receives,
	// including legacy .xls sources.
	TargetExtension = ".xlsx"

	// DefaultServeAddr is the listen address of the HTTP API.
	DefaultServeAddr = ":3001"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "fidsort.yaml"
)

// SpreadsheetExtensions lists the suffixes the scanner picks up.
// Matching is case-sensitive.
var SpreadsheetExtensions = []string{".xlsx", ".xls"}
