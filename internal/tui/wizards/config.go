// Package wizards holds multi-step interactive flows built from components.
package wizards

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fidsort/internal/config"
	"github.com/vvka-141/fidsort/internal/tui/components"
)

// Form field keys.
const (
	fieldDeepScan   = "deep_scan"
	fieldAddr       = "addr"
	fieldCORSOrigin = "cors_origin"
	fieldBrowse     = "browse_start"
)

// ConfigResult holds the result of the config wizard.
type ConfigResult struct {
	Cancelled bool
	Config    config.ProjectConfig
}

// NewConfigForm builds the settings form prefilled from cfg.
func NewConfigForm(cfg config.ProjectConfig) components.Form {
	return components.NewForm("fidsort - Configuration",
		components.NewTextField(fieldDeepScan, "Scan subfolders by default", "false").
			WithHint("true or false").
			WithValue(strconv.FormatBool(cfg.DeepScan)).
			WithValidator(validateBool),
		components.NewTextField(fieldAddr, "API listen address", ":3001").
			WithValue(cfg.Serve.Addr).
			WithRequired(true).
			WithValidator(validateAddr),
		components.NewTextField(fieldCORSOrigin, "Allowed browser origin", "*").
			WithHint("* allows any origin").
			WithValue(cfg.Serve.CORSOrigin),
		components.NewTextField(fieldBrowse, "Folder browser start", "home directory").
			WithValue(cfg.Browse.Start),
	)
}

// ConfigFromValues converts submitted form values into a configuration.
func ConfigFromValues(values map[string]string) (config.ProjectConfig, error) {
	deep, err := parseBool(values[fieldDeepScan])
	if err != nil {
		return config.ProjectConfig{}, err
	}

	cfg := config.ProjectConfig{
		DeepScan: deep,
		Serve: config.ServeConfig{
			Addr:       strings.TrimSpace(values[fieldAddr]),
			CORSOrigin: strings.TrimSpace(values[fieldCORSOrigin]),
		},
		Browse: config.BrowseConfig{
			Start: strings.TrimSpace(values[fieldBrowse]),
		},
	}
	if cfg.Serve.CORSOrigin == "" {
		cfg.Serve.CORSOrigin = "*"
	}
	return cfg, nil
}

// RunConfigWizard shows the settings form on the terminal.
func RunConfigWizard(initial config.ProjectConfig) (ConfigResult, error) {
	m, err := tea.NewProgram(NewConfigForm(initial)).Run()
	if err != nil {
		return ConfigResult{}, err
	}

	form := m.(components.Form)
	if form.Cancelled() || !form.Submitted() {
		return ConfigResult{Cancelled: true}, nil
	}

	cfg, err := ConfigFromValues(form.Values())
	if err != nil {
		return ConfigResult{}, err
	}
	return ConfigResult{Config: cfg}, nil
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is not true or false", s)
	}
	return v, nil
}

func validateBool(s string) error {
	_, err := parseBool(s)
	return err
}

func validateAddr(s string) error {
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected host:port, e.g. :3001")
	}
	return nil
}
