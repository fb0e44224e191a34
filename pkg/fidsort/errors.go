package fidsort

import (
	"errors"
	"strings"
)

// Sentinel errors for request-level failures.
// Per-file failures never surface as errors; they are reported as a status
// on the file's record or outcome.
//
// Example usage:
//
//	res, err := scanner.ScanDirectory(root, false)
//	if errors.Is(err, fidsort.ErrInvalidInput) {
//	    // root is missing or not a directory
//	}
var (
	// ErrInvalidInput indicates a missing or unusable request argument,
	// such as a root path that does not exist or is not a directory.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfig indicates fidsort.yaml or an environment override is invalid.
	ErrConfig = errors.New("invalid configuration")

	// ErrApprovalDenied indicates the user declined the relocation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrPartialFailure indicates a relocation pass finished but one or more
	// files could not be moved.
	ErrPartialFailure = errors.New("some files could not be relocated")
)

// usageErrorPatterns are message fragments cobra and pflag produce for
// command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrPartialFailure):
		return ExitPartialFailure
	}

	msg := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
