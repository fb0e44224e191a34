// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner and relocator reach the disk only through FileSystemProvider,
// so both can be exercised against an in-memory tree in tests.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories, reads, stats, creates and renames
//   - Directory: Lists or walks a directory tree
//   - File: An individual file or directory with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
