package fidsort

import (
	"encoding/json"
	"strings"
)

// FileStatus is the classification of a discovered spreadsheet.
// The string values are part of the HTTP contract and must not change.
type FileStatus string

const (
	// StatusReady marks a file with an identifier that is not yet inside a
	// directory named after that identifier.
	StatusReady FileStatus = "Ready"

	// StatusAlreadySorted marks a file whose parent directory already
	// carries its identifier.
	StatusAlreadySorted FileStatus = "Already Sorted"

	// StatusNoIdentifier marks a workbook whose header has no column
	// containing "fid".
	StatusNoIdentifier FileStatus = "Error: No FID found"

	// StatusUnreadable marks a file that could not be opened or parsed.
	StatusUnreadable FileStatus = "Error reading file"
)

// IsError reports whether the status is one of the error classifications.
func (s FileStatus) IsError() bool {
	return s == StatusNoIdentifier || s == StatusUnreadable
}

// FileRecord describes one spreadsheet discovered by a scan.
// FullPath is the identity key and is unique within one scan.
type FileRecord struct {
	FullPath     string     `json:"fullPath"`
	RelativePath string     `json:"relativePath"`
	FileName     string     `json:"fileName"`
	FID          string     `json:"fid,omitempty"`
	Name         string     `json:"name,omitempty"`
	Status       FileStatus `json:"status"`
}

// ScanResult contains the records produced by one scan.
// The skip counters surface items that were left out without an error.
type ScanResult struct {
	Files []FileRecord `json:"files"`

	// SkippedEmpty counts workbooks whose first sheet had no data rows.
	SkippedEmpty int `json:"skippedEmpty,omitempty"`

	// SkippedUnreadableDirs counts directories a deep scan could not list.
	SkippedUnreadableDirs int `json:"skippedUnreadableDirs,omitempty"`
}

// Ready returns the records classified as StatusReady, in scan order.
func (r ScanResult) Ready() []FileRecord {
	var ready []FileRecord
	for _, f := range r.Files {
		if f.Status == StatusReady {
			ready = append(ready, f)
		}
	}
	return ready
}

// CountByStatus tallies records per status.
func (r ScanResult) CountByStatus() map[FileStatus]int {
	counts := make(map[FileStatus]int, 4)
	for _, f := range r.Files {
		counts[f.Status]++
	}
	return counts
}

// OutcomeStatus is the result of relocating one submitted record.
type OutcomeStatus string

const (
	OutcomeSkipped               OutcomeStatus = "Skipped"
	OutcomeSkippedAlreadyCorrect OutcomeStatus = "Skipped (Already correct)"
	OutcomeSuccess               OutcomeStatus = "Success"
	OutcomeSuccessRenamed        OutcomeStatus = "Success (Renamed to avoid collision)"
	OutcomeError                 OutcomeStatus = "Error"
)

// IsSuccess reports whether the file was moved.
func (s OutcomeStatus) IsSuccess() bool {
	return s == OutcomeSuccess || s == OutcomeSuccessRenamed
}

// RelocationOutcome reports what happened to one submitted record.
// File echoes the record's RelativePath so callers can correlate outcomes
// with the rows they displayed.
type RelocationOutcome struct {
	File       string
	Status     OutcomeStatus
	Message    string
	TargetPath string
}

// Label renders the status the way it appears on the wire.
// Error outcomes carry their message: "Error: <message>".
func (o RelocationOutcome) Label() string {
	if o.Status == OutcomeError {
		return string(OutcomeError) + ": " + o.Message
	}
	return string(o.Status)
}

// MarshalJSON implements json.Marshaler.
func (o RelocationOutcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File       string `json:"file"`
		Status     string `json:"status"`
		TargetPath string `json:"targetPath,omitempty"`
	}{
		File:       o.File,
		Status:     o.Label(),
		TargetPath: o.TargetPath,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the labels produced
// by MarshalJSON.
func (o *RelocationOutcome) UnmarshalJSON(data []byte) error {
	var wire struct {
		File       string `json:"file"`
		Status     string `json:"status"`
		TargetPath string `json:"targetPath"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	o.File = wire.File
	o.TargetPath = wire.TargetPath
	o.Message = ""
	if msg, ok := strings.CutPrefix(wire.Status, string(OutcomeError)+": "); ok {
		o.Status = OutcomeError
		o.Message = msg
		return nil
	}
	o.Status = OutcomeStatus(wire.Status)
	return nil
}

// RelocationResult contains one outcome per submitted record, in submission order.
type RelocationResult struct {
	Results []RelocationOutcome `json:"results"`
}

// Summary tallies a relocation pass.
type Summary struct {
	Moved   int
	Renamed int
	Skipped int
	Failed  int
}

// Summary counts outcomes by kind. Renamed files are counted in both
// Moved and Renamed.
func (r RelocationResult) Summary() Summary {
	var s Summary
	for _, o := range r.Results {
		switch o.Status {
		case OutcomeSuccess:
			s.Moved++
		case OutcomeSuccessRenamed:
			s.Moved++
			s.Renamed++
		case OutcomeError:
			s.Failed++
		default:
			s.Skipped++
		}
	}
	return s
}
