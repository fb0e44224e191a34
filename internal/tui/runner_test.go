package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptContinue(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"\n", true},
		{"", true},
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"no\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := promptContinue(strings.NewReader(tt.input), &out, "Overwrite?"); got != tt.want {
			t.Errorf("promptContinue(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Overwrite? [Y/n]") {
			t.Errorf("prompt not written, got %q", out.String())
		}
	}
}

func TestPromptContinue_NonInteractive(t *testing.T) {
	t.Setenv(EnvNonInteractive, "1")

	if !PromptContinue("Proceed?") {
		t.Error("PromptContinue() = false without a terminal, want true")
	}
}

func TestProgressDisplay(t *testing.T) {
	var out bytes.Buffer
	p := NewProgressDisplay(&out)

	p.Start("Scanning /data")
	p.Success("Found 3 file(s)")
	p.Error("2 file(s) failed")

	got := out.String()
	for _, want := range []string{"Scanning /data", SymbolCheck, "Found 3 file(s)", SymbolCross, "2 file(s) failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
