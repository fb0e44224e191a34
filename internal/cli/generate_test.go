package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

func TestGenerate_WritesCountFiles(t *testing.T) {
	isolateConfig(t)
	dir := filepath.Join(t.TempDir(), "inbox")

	out, _, err := executeCommand(t, "generate", dir, "--count", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 files, got %d", len(entries))
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "random_file_") || !strings.HasSuffix(e.Name(), ".xlsx") {
			t.Errorf("unexpected file name %q", e.Name())
		}
	}
	if !strings.Contains(out, "4 sample file(s) written") {
		t.Errorf("missing summary in output:\n%s", out)
	}
}

func TestGenerate_ThenScanFindsReadyFiles(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if _, _, err := executeCommand(t, "generate", dir, "-n", "3", "--seed", "1"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	out, _, err := executeCommand(t, "scan", dir, "--json", "--status", "ready")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if strings.Count(out, `"status": "Ready"`) != 3 {
		t.Errorf("expected 3 Ready records:\n%s", out)
	}
}

func TestGenerate_RejectsNonPositiveCount(t *testing.T) {
	isolateConfig(t)

	_, _, err := executeCommand(t, "generate", t.TempDir(), "--count", "0")
	if err == nil {
		t.Fatal("expected error for --count 0")
	}
	if code := fidsort.ExitCodeForError(err); code != fidsort.ExitInvalidInput {
		t.Errorf("expected exit code %d, got %d", fidsort.ExitInvalidInput, code)
	}
}
