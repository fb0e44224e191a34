package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/fidsort/internal/tui"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.MutedStyle).
		Headers(headers...)
}

// renderRecords writes one row per scanned file.
func renderRecords(w io.Writer, files []fidsort.FileRecord) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No spreadsheets found.")
		return
	}

	t := newTable("File", "FID", "Name", "Status")
	for _, f := range files {
		t.Row(f.RelativePath, f.FID, f.Name, tui.FileStatusStyle(f.Status).Render(string(f.Status)))
	}
	fmt.Fprintln(w, t.Render())
}

// renderScanSummary writes the per-status counts and skipped totals.
func renderScanSummary(w io.Writer, result fidsort.ScanResult) {
	counts := result.CountByStatus()
	statuses := make([]fidsort.FileStatus, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })

	fmt.Fprintf(w, "%d file(s)", len(result.Files))
	for _, s := range statuses {
		fmt.Fprintf(w, " %s %s: %d", tui.SymbolPending, s, counts[s])
	}
	fmt.Fprintln(w)

	if result.SkippedEmpty > 0 {
		fmt.Fprintf(w, "%d workbook(s) without data rows were ignored\n", result.SkippedEmpty)
	}
	if result.SkippedUnreadableDirs > 0 {
		fmt.Fprintf(w, "%d folder(s) could not be read\n", result.SkippedUnreadableDirs)
	}
}

// renderOutcomes writes one row per relocation outcome.
func renderOutcomes(w io.Writer, result fidsort.RelocationResult) {
	t := newTable("", "File", "Result", "Target")
	for _, o := range result.Results {
		t.Row(tui.OutcomeSymbol(o.Status), o.File, o.Label(), o.TargetPath)
	}
	fmt.Fprintln(w, t.Render())
}
