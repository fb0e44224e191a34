package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/files/scanner"
	"github.com/vvka-141/fidsort/internal/workbook"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

var scanCmd = &cobra.Command{
	Use:   "scan <folder>",
	Short: "Classify the spreadsheets in a folder without moving anything",
	Long: `Scan reads the first data row of every .xlsx and .xls file in a folder
and reports the FID, name and status of each one.

Statuses:
  Ready                 has a FID and is not yet in a folder named after it
  Already Sorted        already sits in <fid>/
  Error: No FID found   no header column contains "fid"
  Error reading file    the workbook could not be opened

Files whose first sheet has no data rows are not listed.

Examples:
  # Scan the top level of a folder
  fidsort scan ./inbox

  # Include subfolders and print JSON
  fidsort scan ./inbox --deep --json

  # Only show files that need attention
  fidsort scan ./inbox --status no-fid --status unreadable`,
	Args:              RequireFolder,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

type scanFlagValues struct {
	deep   bool
	json   bool
	status []string
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.deep, "deep", false,
		"Descend into subfolders.\n"+
			"Default: deep_scan from fidsort.yaml or $FIDSORT_DEEP_SCAN")
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print records as JSON")
	scanCmd.Flags().StringArrayVar(&scanFlags.status, "status", nil,
		"Only list records with this status (repeatable): ready, sorted, no-fid, unreadable")

	_ = scanCmd.RegisterFlagCompletionFunc("status", completeStatusFilters)
}

func runScan(cmd *cobra.Command, args []string) error {
	folder := args[0]

	filter, err := parseStatusFilter(scanFlags.status)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	deep := resolveDeepScan(cmd, scanFlags.deep, cfg)

	s := scanner.NewScanner(workbook.NewReader(), newLogger(cmd))
	result, err := s.ScanDirectory(folder, deep)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	result.Files = filterRecords(result.Files, filter)

	out := cmd.OutOrStdout()
	if scanFlags.json {
		return writeJSON(out, result)
	}
	renderRecords(out, result.Files)
	renderScanSummary(out, result)
	return nil
}

// parseStatusFilter resolves --status values. An empty result means no filter.
func parseStatusFilter(values []string) (map[fidsort.FileStatus]bool, error) {
	if len(values) == 0 {
		return nil, nil
	}

	filter := make(map[fidsort.FileStatus]bool, len(values))
	for _, v := range values {
		status, ok := statusFilters[strings.ToLower(strings.TrimSpace(v))]
		if !ok {
			names := make([]string, 0, len(statusFilters))
			for name := range statusFilters {
				names = append(names, name)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("%w: unknown --status %q (expected one of %s)",
				fidsort.ErrInvalidInput, v, strings.Join(names, ", "))
		}
		filter[status] = true
	}
	return filter, nil
}

func filterRecords(files []fidsort.FileRecord, filter map[fidsort.FileStatus]bool) []fidsort.FileRecord {
	if filter == nil {
		return files
	}
	kept := make([]fidsort.FileRecord, 0, len(files))
	for _, f := range files {
		if filter[f.Status] {
			kept = append(kept, f)
		}
	}
	return kept
}
