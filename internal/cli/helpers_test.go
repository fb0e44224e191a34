package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vvka-141/fidsort/internal/config"
	"github.com/vvka-141/fidsort/internal/sample"
	"github.com/vvka-141/fidsort/internal/workbook"
)

// resetCommandFlags restores every command's flags to their defaults.
// Flags are package-level globals and cobra keeps Changed across executions.
func resetCommandFlags() {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() == "bool" {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	scanFlags = scanFlagValues{}
	sortFlags = sortFlagValues{}
	browseFlags = browseFlagValues{}
	serveFlags = serveFlagValues{}
	generateFlags = generateFlagValues{count: sample.DefaultCount}
}

// isolateConfig points config lookup at an empty directory and clears
// FIDSORT_* overrides for the duration of the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	prev := configDir
	configDir = dir
	t.Cleanup(func() { configDir = prev })

	for _, key := range []string{config.EnvAddr, config.EnvDeepScan} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

// executeCommand runs the root command with args and captures both streams.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetCommandFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// writeWorkbook writes a one-sheet workbook to dir/rel, creating parents.
func writeWorkbook(t *testing.T, dir, rel string, header []string, rows ...[]interface{}) string {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var buf bytes.Buffer
	if err := workbook.WriteXLSX(&buf, "Sheet1", header, rows); err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return p
}
