package retry

import (
	"errors"
	"runtime"
	"syscall"
)

// Classifier decides whether an error is worth another attempt.
type Classifier interface {
	IsTransient(err error) bool
}

// Windows error codes for a file held open by another process.
const (
	winErrorSharingViolation syscall.Errno = 32
	winErrorLockViolation    syscall.Errno = 33
)

// FileSystemClassifier treats lock and interruption errnos as transient.
// Missing files, permission problems and full disks are fatal.
type FileSystemClassifier struct {
	goos string
}

// NewFileSystemClassifier creates a classifier for the running platform.
func NewFileSystemClassifier() *FileSystemClassifier {
	return &FileSystemClassifier{goos: runtime.GOOS}
}

// IsTransient implements Classifier.
func (c *FileSystemClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}

	if c.goos == "windows" {
		return errno == winErrorSharingViolation || errno == winErrorLockViolation
	}

	switch errno {
	case syscall.EBUSY, syscall.EAGAIN, syscall.EINTR, syscall.ETXTBSY:
		return true
	}
	return false
}

var _ Classifier = (*FileSystemClassifier)(nil)
