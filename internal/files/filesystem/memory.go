package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is one stored file or directory.
type memoryNode struct {
	content []byte
	info    *memoryFileInfo
}

// memoryFile implements File for a node seen from a particular directory.
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Entries() ([]File, error) {
	d.fs.mu.RLock()
	defer d.fs.mu.RUnlock()

	if d.fs.unreadable[d.absPath] {
		return nil, fmt.Errorf("failed to read directory: %w", &fs.PathError{Op: "open", Path: d.absPath, Err: fs.ErrPermission})
	}

	var files []File
	for p, node := range d.fs.nodes {
		if p == d.absPath || path.Dir(p) != d.absPath {
			continue
		}
		files = append(files, d.view(p, node))
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path() < files[j].Path()
	})
	return files, nil
}

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	d.fs.mu.RLock()
	var entries []File
	var blocked []string
	paths := d.fs.pathsUnder(d.absPath)
	for _, p := range paths {
		if underAny(p, blocked) {
			continue
		}
		entries = append(entries, d.view(p, d.fs.nodes[p]))
		if d.fs.unreadable[p] {
			blocked = append(blocked, p)
		}
	}
	d.fs.mu.RUnlock()

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.Path(), skipped) {
			continue
		}

		var entryErr error
		if d.fs.isUnreadable(entry.Path()) {
			entryErr = &fs.PathError{Op: "open", Path: entry.Path(), Err: fs.ErrPermission}
		}

		if callbackErr := fn(entry, entryErr); callbackErr != nil {
			if callbackErr == filepath.SkipDir {
				if entry.Info().IsDir() {
					skipped = append(skipped, entry.Path())
				}
				continue
			}
			return callbackErr
		}
	}

	return nil
}

func (d *memoryDirectory) view(p string, node *memoryNode) *memoryFile {
	rel := "."
	if p != d.absPath {
		rel = strings.TrimPrefix(p, strings.TrimSuffix(d.absPath, "/")+"/")
	}
	return &memoryFile{
		absPath: p,
		relPath: rel,
		content: node.content,
		info:    node.info,
	}
}

func underAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu         sync.RWMutex
	nodes      map[string]*memoryNode // absolute path -> node
	unreadable map[string]bool
	root       string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes:      make(map[string]*memoryNode),
		unreadable: make(map[string]bool),
		root:       root,
	}
	mfs.nodes[root] = newDirNode(root)
	return mfs
}

func newDirNode(p string) *memoryNode {
	return &memoryNode{
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// Root returns the root directory of the virtual filesystem.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileBytes(path, []byte(content))
}

// AddFileBytes adds a file with binary content, creating parent directories.
func (mfs *MemoryFileSystem) AddFileBytes(filePath string, content []byte) {
	absPath := mfs.abs(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.nodes[absPath] = &memoryNode{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if _, exists := mfs.nodes[absPath]; !exists {
		mfs.nodes[absPath] = newDirNode(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetUnreadable makes listing the given directory fail with a permission
// error, the way an access-restricted directory behaves on disk.
func (mfs *MemoryFileSystem) SetUnreadable(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.unreadable[absPath] = true
}

// Exists reports whether a file or directory exists at p.
func (mfs *MemoryFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	_, ok := mfs.nodes[mfs.abs(p)]
	return ok
}

// Files returns the absolute paths of all regular files, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var files []string
	for p, node := range mfs.nodes {
		if !node.info.isDir {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files
}

func (mfs *MemoryFileSystem) isUnreadable(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.unreadable[p]
}

// abs resolves p against the virtual root.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Caller holds mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if dir == "." || dir == "/" || dir == p {
		return
	}
	if _, exists := mfs.nodes[dir]; exists {
		return
	}
	mfs.nodes[dir] = newDirNode(dir)
	mfs.ensureDirectoriesExist(dir)
}

// pathsUnder returns basePath and everything below it in lexical order.
// Caller holds mu.
func (mfs *MemoryFileSystem) pathsUnder(basePath string) []string {
	prefix := strings.TrimSuffix(basePath, "/") + "/"
	var paths []string
	for p := range mfs.nodes {
		if p == basePath || strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.abs(openPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", &fs.PathError{Op: "stat", Path: openPath, Err: fs.ErrNotExist})
	}
	if !node.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile returns the content stored at filePath.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if node.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return node.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	dir, err := mfs.Open(dirPath)
	if err != nil {
		return nil, err
	}
	entries, err := dir.Entries()
	if err != nil {
		return nil, err
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.Info())
	}
	return infos, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return node.info, nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.abs(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	return mfs.mkdirAll(absPath)
}

func (mfs *MemoryFileSystem) mkdirAll(p string) error {
	if p == "/" || p == "." {
		return nil
	}
	if node, exists := mfs.nodes[p]; exists {
		if !node.info.isDir {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
		return nil
	}
	if err := mfs.mkdirAll(path.Dir(p)); err != nil {
		return err
	}
	mfs.nodes[p] = newDirNode(p)
	return nil
}

// Rename implements FileSystemProvider.Rename for regular files.
// Like rename(2), an existing file at newPath is replaced.
func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	src := mfs.abs(oldPath)
	dst := mfs.abs(newPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	node, exists := mfs.nodes[src]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if node.info.isDir {
		return fmt.Errorf("rename %s: directories are not supported", oldPath)
	}
	parent, exists := mfs.nodes[path.Dir(dst)]
	if !exists || !parent.info.isDir {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}
	if target, exists := mfs.nodes[dst]; exists && target.info.isDir {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrExist}
	}

	delete(mfs.nodes, src)
	info := *node.info
	info.name = path.Base(dst)
	mfs.nodes[dst] = &memoryNode{content: node.content, info: &info}
	return nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
