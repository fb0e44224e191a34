package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

func TestRequireFolder(t *testing.T) {
	cmd := &cobra.Command{
		Use: "scan <folder>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireFolder(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <folder>") {
			t.Errorf("expected error to contain 'missing required argument: <folder>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		if code := fidsort.ExitCodeForError(err); code != fidsort.ExitUsageError {
			t.Errorf("expected exit code %d, got %d", fidsort.ExitUsageError, code)
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireFolder(cmd, []string{"./inbox"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireFolder(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestOptionalFolder(t *testing.T) {
	cmd := &cobra.Command{Use: "browse [folder]"}

	if err := OptionalFolder(cmd, nil); err != nil {
		t.Errorf("expected nil for no args, got: %v", err)
	}
	if err := OptionalFolder(cmd, []string{"/data"}); err != nil {
		t.Errorf("expected nil for one arg, got: %v", err)
	}
	err := OptionalFolder(cmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := fidsort.ExitCodeForError(err); code != fidsort.ExitUsageError {
		t.Errorf("expected exit code %d, got %d", fidsort.ExitUsageError, code)
	}
}
