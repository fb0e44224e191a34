package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file or directory with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the directory that produced it
	RelativePath() string

	// Info returns file metadata. May be nil when the entry was reported
	// together with an error.
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be listed or traversed
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Entries returns the direct children of the directory in name order.
	Entries() ([]File, error)

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory, the root included.
	// When a directory cannot be read, fn is called with that directory and
	// the read error; returning nil skips its contents and continues the walk.
	// If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the entry point for all filesystem access.
// Only the relocator calls the mutating methods.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	// It is not an error if the directory already exists.
	MkdirAll(path string) error

	// Rename moves a file from oldPath to newPath.
	Rename(oldPath, newPath string) error
}
