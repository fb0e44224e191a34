package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/files/relocator"
	"github.com/vvka-141/fidsort/internal/files/scanner"
	"github.com/vvka-141/fidsort/internal/tui"
	"github.com/vvka-141/fidsort/internal/ui"
	"github.com/vvka-141/fidsort/internal/workbook"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

var sortCmd = &cobra.Command{
	Use:   "sort <folder>",
	Short: "Move every Ready spreadsheet into <folder>/<fid>/",
	Long: `Sort scans a folder, lists the files that are Ready, asks for approval
and moves each one to <folder>/<fid>/<Name>_<fid>.xlsx.

Files that are already sorted or could not be classified are left alone.
When the target name is taken, the file is saved as
<Name>_<fid>_<unix-millis>.xlsx instead of overwriting.

Approval:
  Interactive terminals are asked to confirm with y/N.
  Scripts and CI must pass --yes; without it sort refuses to move anything.

Examples:
  # Review the plan and confirm
  fidsort sort ./inbox

  # Only print the plan
  fidsort sort ./inbox --dry-run

  # Unattended run over all subfolders
  fidsort sort ./inbox --deep --yes --json`,
	Args:              RequireFolder,
	ValidArgsFunction: completeDirectories,
	RunE:              runSort,
}

type sortFlagValues struct {
	deep   bool
	yes    bool
	dryRun bool
	json   bool
}

var sortFlags sortFlagValues

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().BoolVar(&sortFlags.deep, "deep", false,
		"Descend into subfolders.\n"+
			"Default: deep_scan from fidsort.yaml or $FIDSORT_DEEP_SCAN")
	sortCmd.Flags().BoolVarP(&sortFlags.yes, "yes", "y", false, "Move files without asking for confirmation")
	sortCmd.Flags().BoolVar(&sortFlags.dryRun, "dry-run", false, "Print the plan and exit without moving anything")
	sortCmd.Flags().BoolVar(&sortFlags.json, "json", false, "Print outcomes as JSON")
}

func runSort(cmd *cobra.Command, args []string) error {
	folder := args[0]
	verbose := getVerboseFlag(cmd)
	out := cmd.OutOrStdout()

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	deep := resolveDeepScan(cmd, sortFlags.deep, cfg)
	logger := newLogger(cmd)

	s := scanner.NewScanner(workbook.NewReader(), logger)
	scanned, err := s.ScanDirectory(folder, deep)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	ready := scanned.Ready()
	if len(ready) == 0 {
		if sortFlags.json {
			return writeJSON(out, fidsort.RelocationResult{Results: []fidsort.RelocationOutcome{}})
		}
		fmt.Fprintf(out, "Nothing to sort: no Ready files in %s\n", folder)
		return nil
	}

	if sortFlags.dryRun {
		ui.WritePlan(out, folder, ready)
		return nil
	}

	approver, err := selectApprover(verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	approved, err := approver.RequestApproval(ctx, folder, ready)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fidsort.ErrApprovalDenied
	}

	progress := tui.NewProgressDisplay(cmd.ErrOrStderr())
	progress.Start(fmt.Sprintf("Moving %d file(s)", len(ready)))

	result, err := relocator.NewRelocator(logger).Relocate(folder, ready)
	if err != nil {
		progress.Error(err.Error())
		return fmt.Errorf("sort failed: %w", err)
	}

	summary := result.Summary()
	if summary.Failed > 0 {
		progress.Error(fmt.Sprintf("%d moved, %d failed", summary.Moved, summary.Failed))
	} else {
		progress.Success(fmt.Sprintf("%d moved (%d renamed), %d skipped", summary.Moved, summary.Renamed, summary.Skipped))
	}

	if sortFlags.json {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		renderOutcomes(out, result)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", fidsort.ErrPartialFailure, summary.Failed, len(result.Results))
	}
	return nil
}

// selectApprover picks the confirmation strategy. Without --yes a terminal
// is required.
func selectApprover(verbose bool) (fidsort.Approver, error) {
	if sortFlags.yes {
		return ui.NewForcedApprover(verbose), nil
	}
	if !tui.IsInteractive() {
		return nil, fmt.Errorf("%w: no terminal to confirm the move; pass --yes to sort unattended",
			fidsort.ErrApprovalDenied)
	}
	return ui.NewInteractiveApprover(verbose), nil
}
