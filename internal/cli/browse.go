package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/files/dirlist"
	"github.com/vvka-141/fidsort/internal/files/scanner"
	"github.com/vvka-141/fidsort/internal/tui"
	"github.com/vvka-141/fidsort/internal/tui/components"
	"github.com/vvka-141/fidsort/internal/workbook"
)

var browseCmd = &cobra.Command{
	Use:   "browse [folder]",
	Short: "Pick a folder in the terminal and scan it",
	Long: `Browse opens a folder picker in the terminal. Navigate with the arrow
keys, open a subfolder with enter, go up with backspace, and choose the
highlighted folder with "[ use this folder ]". The chosen folder is then
scanned and printed the same way as 'fidsort scan'.

The picker starts in the given folder, browse.start from fidsort.yaml, or
your home directory, in that order. Hidden folders (.name) and system
folders ($name) are not shown.

Examples:
  fidsort browse
  fidsort browse ~/Downloads --deep`,
	Args:              OptionalFolder,
	ValidArgsFunction: completeDirectories,
	RunE:              runBrowse,
}

type browseFlagValues struct {
	deep bool
}

var browseFlags browseFlagValues

// pickFolder runs the picker and returns the chosen folder, or "" when the
// user quit. Replaced in tests.
var pickFolder = runDirPicker

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVar(&browseFlags.deep, "deep", false,
		"Descend into subfolders when scanning the chosen folder.\n"+
			"Default: deep_scan from fidsort.yaml or $FIDSORT_DEEP_SCAN")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	start := cfg.Browse.Start
	if len(args) > 0 {
		start = args[0]
	}

	folder, err := pickFolder(start)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if folder == "" {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}
	fmt.Fprintf(out, "%s %s\n\n", tui.SymbolFolder, tui.PathStyle.Render(folder))

	s := scanner.NewScanner(workbook.NewReader(), newLogger(cmd))
	result, err := s.ScanDirectory(folder, resolveDeepScan(cmd, browseFlags.deep, cfg))
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	renderRecords(out, result.Files)
	renderScanSummary(out, result)
	return nil
}

func runDirPicker(start string) (string, error) {
	if !tui.IsInteractive() {
		return "", errors.New("browse requires an interactive terminal\n" +
			"For non-interactive use, run 'fidsort scan <folder>'")
	}

	lister := dirlist.NewLister()
	picker := components.NewDirPicker("Choose a folder to sort", lister.List, start)
	if picker.Err() != nil && start != "" {
		// Unusable start folder: fall back to home.
		picker = components.NewDirPicker("Choose a folder to sort", lister.List, "")
	}
	if picker.Err() != nil && picker.CurrentPath() == "" {
		return "", fmt.Errorf("failed to list folders: %w", picker.Err())
	}

	m, err := tea.NewProgram(picker, tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("folder picker failed: %w", err)
	}

	final := m.(components.DirPicker)
	if final.Cancelled() {
		return "", nil
	}
	return final.Chosen(), nil
}
