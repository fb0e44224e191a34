package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// diskFile is a file or directory entry on the local disk.
type diskFile struct {
	path string
	rel  string
	info fs.FileInfo
}

func (f *diskFile) Path() string                 { return f.path }
func (f *diskFile) RelativePath() string         { return f.rel }
func (f *diskFile) Info() FileInfo               { return f.info }
func (f *diskFile) ReadContent() ([]byte, error) { return os.ReadFile(f.path) }

// diskDirectory is an opened directory; path is absolute.
type diskDirectory struct {
	path string
}

func (d *diskDirectory) Path() string { return d.path }

// Entries lists direct children in name order. Entries removed between the
// listing and the stat are left out.
func (d *diskDirectory) Entries() ([]File, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, &diskFile{
			path: filepath.Join(d.path, entry.Name()),
			rel:  entry.Name(),
			info: info,
		})
	}
	return files, nil
}

// Walk visits the tree in lexical order via filepath.WalkDir. A directory
// that cannot be read is reported a second time with the read error.
func (d *diskDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.path, func(path string, entry fs.DirEntry, walkErr error) error {
		rel, err := filepath.Rel(d.path, path)
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get relative path: %w", err))
		}

		file := &diskFile{path: path, rel: rel}
		if entry != nil {
			info, infoErr := entry.Info()
			if infoErr != nil && walkErr == nil {
				walkErr = infoErr
			}
			if info != nil {
				file.info = info
			}
		}
		if file.info == nil {
			return fn(nil, walkErr)
		}
		return fn(file, walkErr)
	})
}

// OSFileSystem is the FileSystemProvider backed by package os.
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open returns the directory at path, resolved to an absolute path.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	return &diskDirectory{path: abs}, nil
}

func (p *OSFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll creates path with mode 0755.
func (p *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Rename moves a file. Both paths must be on the same volume.
func (p *OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
