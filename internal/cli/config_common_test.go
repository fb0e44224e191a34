package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fidsort/internal/config"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fidsort.ConfigFileName), []byte(content), 0644))
}

func TestLoadProjectConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadProjectConfig_FileThenEnv(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, dir, "deep_scan: false\nserve:\n  addr: \":4000\"\n")

	cfg, err := loadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Serve.Addr)
	assert.False(t, cfg.DeepScan)

	t.Setenv(config.EnvAddr, "127.0.0.1:5000")
	t.Setenv(config.EnvDeepScan, "true")

	cfg, err = loadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5000", cfg.Serve.Addr)
	assert.True(t, cfg.DeepScan)
}

func TestLoadProjectConfig_DotEnv(t *testing.T) {
	dir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FIDSORT_DEEP_SCAN=yes-please\n"), 0644))

	_, err := loadProjectConfig()
	require.Error(t, err)
	assert.Equal(t, fidsort.ExitConfigError, fidsort.ExitCodeForError(err))
}

func TestLoadProjectConfig_InvalidYAML(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, dir, "serve: [\n")

	_, err := loadProjectConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, fidsort.ErrConfig)
}

func TestResolveDeepScan(t *testing.T) {
	resetCommandFlags()
	cfg := &config.ProjectConfig{DeepScan: true}

	assert.True(t, resolveDeepScan(scanCmd, false, cfg), "config applies when flag not set")

	require.NoError(t, scanCmd.Flags().Set("deep", "false"))
	t.Cleanup(resetCommandFlags)
	assert.False(t, resolveDeepScan(scanCmd, false, cfg), "explicit flag wins")
}
