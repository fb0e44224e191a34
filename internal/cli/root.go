package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = `  __ _     _               _
 / _(_) __| |___  ___  _ __| |_
| |_| |/ _' / __|/ _ \| '__| __|
|  _| | (_| \__ \ (_) | |  | |_
|_| |_|\__,_|___/\___/|_|   \__|`

var rootCmd = &cobra.Command{
	Use:   "fidsort",
	Short: "Sort spreadsheets into folders by their FID",
	Long: banner + `

fidsort reads the first data row of every .xlsx and .xls file in a folder,
finds the column whose header contains "fid", and moves each file to
<folder>/<fid>/<Name>_<fid>.xlsx.

Nothing is moved without approval: preview with 'fidsort scan', then run
'fidsort sort'. 'fidsort serve' exposes the same operations to a browser UI.

Configuration:
  fidsort.yaml in the working directory, .env, and FIDSORT_* variables.
  Precedence: flag > environment > fidsort.yaml > default.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User declined the move
  15 - Invalid input (folder missing or not a directory)
  16 - Some files could not be moved`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
