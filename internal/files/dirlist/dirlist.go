// Package dirlist enumerates the subdirectories of a folder for pickers.
package dirlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/fidsort/internal/files/filesystem"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// Listing is one level of the directory tree.
type Listing struct {
	CurrentPath string   `json:"currentPath"`
	Dirs        []string `json:"dirs"`
	ParentPath  string   `json:"parentPath"`
}

// Lister reads directory levels through a filesystem provider.
type Lister struct {
	fsProvider filesystem.FileSystemProvider
	home       func() (string, error)
}

// NewLister creates a lister over the OS filesystem.
func NewLister() *Lister {
	return NewListerWithFS(filesystem.NewOSFileSystem(), os.UserHomeDir)
}

// NewListerWithFS creates a lister with a custom filesystem provider and
// home directory resolver.
func NewListerWithFS(fsProvider filesystem.FileSystemProvider, home func() (string, error)) *Lister {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if home == nil {
		home = os.UserHomeDir
	}
	return &Lister{fsProvider: fsProvider, home: home}
}

// List returns the immediate subdirectories of path, sorted by name.
// An empty path lists the user's home directory. Names starting with "."
// or "$" are hidden. At a filesystem root ParentPath equals CurrentPath.
func (l *Lister) List(path string) (Listing, error) {
	if strings.TrimSpace(path) == "" {
		home, err := l.home()
		if err != nil {
			return Listing{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = home
	}

	current, err := filepath.Abs(path)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: %w", fidsort.ErrInvalidInput, err)
	}

	info, err := l.fsProvider.Stat(current)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: %w", fidsort.ErrInvalidInput, err)
	}
	if !info.IsDir() {
		return Listing{}, fmt.Errorf("%w: not a directory: %s", fidsort.ErrInvalidInput, current)
	}

	entries, err := l.fsProvider.ReadDir(current)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to list %s: %w", current, err)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "$") {
			continue
		}
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)

	return Listing{
		CurrentPath: current,
		Dirs:        dirs,
		ParentPath:  filepath.Dir(current),
	}, nil
}
