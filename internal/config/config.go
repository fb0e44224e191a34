package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override fidsort.yaml.
const (
	EnvAddr     = "FIDSORT_ADDR"
	EnvDeepScan = "FIDSORT_DEEP_SCAN"
)

type ServeConfig struct {
	Addr       string `yaml:"addr,omitempty"`
	CORSOrigin string `yaml:"cors_origin,omitempty"`
}

type BrowseConfig struct {
	Start string `yaml:"start,omitempty"`
}

type ProjectConfig struct {
	DeepScan bool         `yaml:"deep_scan"`
	Serve    ServeConfig  `yaml:"serve,omitempty"`
	Browse   BrowseConfig `yaml:"browse,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Serve: ServeConfig{
			Addr:       fidsort.DefaultServeAddr,
			CORSOrigin: "*",
		},
	}
}

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, fidsort.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to dir/fidsort.yaml, replacing any existing file.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fidsort.ConfigFileName), data, 0644)
}

// ApplyEnv overrides cfg with FIDSORT_* variables from lookup.
// Pass os.LookupEnv in production.
func ApplyEnv(cfg *ProjectConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && strings.TrimSpace(v) != "" {
		cfg.Serve.Addr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDeepScan); ok && strings.TrimSpace(v) != "" {
		deep, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fidsort.ErrConfig, EnvDeepScan, v)
		}
		cfg.DeepScan = deep
	}
	return nil
}
