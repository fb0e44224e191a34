package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fidsort/internal/tui"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

func TestSort_DryRunMovesNothing(t *testing.T) {
	isolateConfig(t)
	root := scanFixture(t)

	out, _, err := executeCommand(t, "sort", root, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "1 file(s) will be moved")
	assert.Contains(t, out, filepath.Join("1001", "Jane Doe_1001.xlsx"))
	assert.FileExists(t, filepath.Join(root, "jane.xlsx"))
	assert.NoDirExists(t, filepath.Join(root, "1001"))
}

func TestSort_YesMovesReadyFiles(t *testing.T) {
	isolateConfig(t)
	root := scanFixture(t)

	out, _, err := executeCommand(t, "sort", root, "--deep", "--yes", "--json")
	require.NoError(t, err)

	var result fidsort.RelocationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	require.Len(t, result.Results, 2)
	for _, o := range result.Results {
		assert.Equal(t, fidsort.OutcomeSuccess, o.Status, o.File)
	}

	assert.FileExists(t, filepath.Join(root, "1001", "Jane Doe_1001.xlsx"))
	assert.FileExists(t, filepath.Join(root, "1003", "Deep_1003.xlsx"))
	assert.NoFileExists(t, filepath.Join(root, "jane.xlsx"))
	assert.FileExists(t, filepath.Join(root, "1002", "bob.xlsx"), "already sorted files stay put")
	assert.FileExists(t, filepath.Join(root, "nofid.xlsx"))
}

func TestSort_SecondRunHasNothingToDo(t *testing.T) {
	isolateConfig(t)
	root := scanFixture(t)

	_, _, err := executeCommand(t, "sort", root, "--deep", "--yes")
	require.NoError(t, err)

	out, _, err := executeCommand(t, "sort", root, "--deep", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to sort")
}

func TestSort_CollisionKeepsBothFiles(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeWorkbook(t, root, "a.xlsx", sampleHeader, []interface{}{"1001", "Alice Smith", "d", "n"})
	writeWorkbook(t, root, "b.xlsx", sampleHeader, []interface{}{"1001", "Alice Smith", "d", "n"})

	out, _, err := executeCommand(t, "sort", root, "--yes", "--json")
	require.NoError(t, err)

	var result fidsort.RelocationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Results, 2)
	assert.Equal(t, fidsort.OutcomeSuccess, result.Results[0].Status)
	assert.Equal(t, fidsort.OutcomeSuccessRenamed, result.Results[1].Status)

	entries, err := os.ReadDir(filepath.Join(root, "1001"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSort_NonInteractiveWithoutYes(t *testing.T) {
	isolateConfig(t)
	t.Setenv(tui.EnvNonInteractive, "1")
	root := scanFixture(t)

	_, _, err := executeCommand(t, "sort", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fidsort.ErrApprovalDenied))
	assert.Equal(t, fidsort.ExitApprovalDenied, fidsort.ExitCodeForError(err))
	assert.FileExists(t, filepath.Join(root, "jane.xlsx"))
}

func TestSort_NothingReady(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeWorkbook(t, root, "nofid.xlsx", []string{"ID"}, []interface{}{"1"})

	out, _, err := executeCommand(t, "sort", root, "--yes", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"results": []}`, out)
}

func TestSort_MissingFolder(t *testing.T) {
	isolateConfig(t)

	_, _, err := executeCommand(t, "sort", filepath.Join(t.TempDir(), "missing"), "--yes")
	require.Error(t, err)
	assert.Equal(t, fidsort.ExitInvalidInput, fidsort.ExitCodeForError(err))
}
