package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")

	mfs.AddFile("a.xlsx", "a")
	mfs.AddFile("1001/b.xlsx", "b")

	dir, err := mfs.Open("/data")
	require.NoError(t, err, "Failed to open root directory")
	require.NotNil(t, dir)

	var files []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1001/b.xlsx", "a.xlsx"}, files)
}

func TestMemoryFileSystem_OpenErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.xlsx", "a")

	_, err := mfs.Open("/data/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Open("/data/a.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestMemoryFileSystem_ReadFileAndStat(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.xlsx", "content")

	content, err := mfs.ReadFile("/data/a.xlsx")
	require.NoError(t, err)
	require.Equal(t, "content", string(content))

	info, err := mfs.Stat("/data/a.xlsx")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "a.xlsx", info.Name())

	info, err = mfs.Stat("/data")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("/data/nope.xlsx")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryDirectory_EntriesAreDirectChildren(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("b.xlsx", "b")
	mfs.AddFile("a.xlsx", "a")
	mfs.AddFile("sub/c.xlsx", "c")

	dir, err := mfs.Open("/data")
	require.NoError(t, err)

	entries, err := dir.Entries()
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.RelativePath())
	}
	assert.Equal(t, []string{"a.xlsx", "b.xlsx", "sub"}, names)
}

func TestMemoryDirectory_WalkReportsUnreadableDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.xlsx", "a")
	mfs.AddFile("locked/hidden.xlsx", "h")
	mfs.AddFile("open/b.xlsx", "b")
	mfs.SetUnreadable("locked")

	dir, err := mfs.Open("/data")
	require.NoError(t, err)

	var files, failed []string
	err = dir.Walk(func(file File, err error) error {
		if err != nil {
			failed = append(failed, file.RelativePath())
			return nil
		}
		if !file.Info().IsDir() {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xlsx", "open/b.xlsx"}, files)
	assert.Equal(t, []string{"locked"}, failed)

	locked, err := mfs.Open("/data/locked")
	require.NoError(t, err)
	_, err = locked.Entries()
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestMemoryDirectory_WalkSkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("skip/a.xlsx", "a")
	mfs.AddFile("keep/b.xlsx", "b")

	dir, err := mfs.Open("/data")
	require.NoError(t, err)

	var files []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() && file.RelativePath() == "skip" {
			return filepath.SkipDir
		}
		if !file.Info().IsDir() {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep/b.xlsx"}, files)
}

func TestMemoryFileSystem_MkdirAllAndRename(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.xlsx", "payload")

	require.NoError(t, mfs.MkdirAll("/data/1001"))
	require.NoError(t, mfs.MkdirAll("/data/1001"), "MkdirAll must be idempotent")

	require.NoError(t, mfs.Rename("/data/a.xlsx", "/data/1001/Bob_1001.xlsx"))
	assert.False(t, mfs.Exists("/data/a.xlsx"))

	content, err := mfs.ReadFile("/data/1001/Bob_1001.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
	assert.Equal(t, []string{"/data/1001/Bob_1001.xlsx"}, mfs.Files())
}

func TestMemoryFileSystem_RenameErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.xlsx", "a")

	err := mfs.Rename("/data/missing.xlsx", "/data/b.xlsx")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = mfs.Rename("/data/a.xlsx", "/data/nodir/b.xlsx")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "target directory must exist")

	mfs.AddFile("blocker", "x")
	err = mfs.MkdirAll("/data/blocker/child")
	assert.Error(t, err, "cannot create a directory below a file")
}
