package sample

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fidsort/internal/workbook"
)

func TestGenerate_WritesReadableWorkbooks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")

	files, err := NewGenerator(42).Generate(dir, 6)
	require.NoError(t, err)
	require.Len(t, files, 6)

	nameRe := regexp.MustCompile(`^random_file_\d{1,4}\.xlsx$`)
	reader := workbook.NewReader()
	for _, f := range files {
		assert.Regexp(t, nameRe, filepath.Base(f.Path))
		assert.Contains(t, []int{1001, 1002, 1003}, f.FID)
		assert.Contains(t, names, f.Name)

		content, err := os.ReadFile(f.Path)
		require.NoError(t, err)

		sheet, err := reader.FirstRecord(filepath.Base(f.Path), content)
		require.NoError(t, err)
		assert.Equal(t, "Sheet1", sheet.Name)

		fid, ok := sheet.Find("fid")
		require.True(t, ok)
		assert.Equal(t, strconv.Itoa(f.FID), fid.Value)

		name, ok := sheet.Find("name")
		require.True(t, ok)
		assert.Equal(t, f.Name, name.Value)

		notes, ok := sheet.Find("notes")
		require.True(t, ok)
		assert.Equal(t, "Sample Data", notes.Value)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 6, "names never collide")
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, err := NewGenerator(7).Generate(t.TempDir(), 5)
	require.NoError(t, err)
	b, err := NewGenerator(7).Generate(t.TempDir(), 5)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, filepath.Base(a[i].Path), filepath.Base(b[i].Path))
		assert.Equal(t, a[i].FID, b[i].FID)
		assert.Equal(t, a[i].Name, b[i].Name)
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	files, err := NewGenerator(1).Generate(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Len(t, files, DefaultCount)
}
