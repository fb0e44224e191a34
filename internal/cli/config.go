package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/config"
	"github.com/vvka-141/fidsort/internal/tui"
	"github.com/vvka-141/fidsort/internal/tui/wizards"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

var configCmd = &cobra.Command{
	Use:   "config [dir]",
	Short: "Interactively create or edit fidsort.yaml",
	Long: `Launches an interactive form to create or edit fidsort.yaml.

The form covers:
  1. Whether scans descend into subfolders by default
  2. The listen address and allowed CORS origin of 'fidsort serve'
  3. The folder 'fidsort browse' starts in

This command requires an interactive terminal. For non-interactive use,
write fidsort.yaml by hand or set FIDSORT_* environment variables.

Examples:
  # Edit fidsort.yaml in the current directory
  fidsort config

  # Create fidsort.yaml next to an inbox folder
  fidsort config ./inbox`,
	Args: OptionalFolder,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	targetDir := configDir
	if len(args) > 0 {
		targetDir = args[0]
	}
	out := cmd.OutOrStdout()

	if !tui.IsInteractive() {
		return fmt.Errorf("config command requires an interactive terminal\n" +
			"For non-interactive use, write fidsort.yaml manually or use FIDSORT_* environment variables")
	}

	initial := config.Default()
	existing, err := config.Load(targetDir)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Found existing %s\n", fidsort.ConfigFileName)
		if !tui.PromptContinue("Overwrite existing configuration?") {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		initial = existing
	case !errors.Is(err, config.ErrConfigNotFound):
		return fmt.Errorf("%w: %w", fidsort.ErrConfig, err)
	}

	result, err := wizards.RunConfigWizard(*initial)
	if err != nil {
		return fmt.Errorf("config wizard failed: %w", err)
	}
	if result.Cancelled {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	if err := config.Save(targetDir, &result.Config); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s Configuration saved to %s\n", tui.SymbolCheck, filepath.Join(targetDir, fidsort.ConfigFileName))
	return nil
}
