package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/config"
	"github.com/vvka-141/fidsort/internal/logging"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// configDir is where fidsort.yaml and .env are looked up.
var configDir = "."

// loadProjectConfig loads .env, fidsort.yaml and FIDSORT_* overrides.
// A missing fidsort.yaml yields the defaults.
func loadProjectConfig() (*config.ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(configDir, ".env"))

	cfg, err := config.Load(configDir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: failed to load %s: %w", fidsort.ErrConfig, fidsort.ConfigFileName, err)
		}
		cfg = config.Default()
	}

	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDeepScan prefers an explicit --deep over configuration.
func resolveDeepScan(cmd *cobra.Command, flagValue bool, cfg *config.ProjectConfig) bool {
	if cmd.Flags().Changed("deep") {
		return flagValue
	}
	return cfg.DeepScan
}

// newLogger builds the console logger for a command.
func newLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
