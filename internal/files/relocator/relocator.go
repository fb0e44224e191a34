package relocator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/fidsort/internal/files/filesystem"
	"github.com/vvka-141/fidsort/internal/logging"
	"github.com/vvka-141/fidsort/internal/retry"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// maxCollisionAttempts bounds the search for a free timestamped name.
const maxCollisionAttempts = 1000

// renameRetries is how often a move blocked by another process is retried.
const renameRetries = 3

// Relocator moves Ready records into {root}/{fid}.
type Relocator struct {
	fsProvider filesystem.FileSystemProvider
	logger     fidsort.Logger
	locks      *RootLocks
	now        func() time.Time
	retrier    *retry.Executor
}

// Option configures a Relocator.
type Option func(*Relocator)

// WithClock replaces the time source used for collision names.
func WithClock(now func() time.Time) Option {
	return func(r *Relocator) {
		r.now = now
	}
}

// WithRetry replaces the executor that retries moves blocked by another
// process. retry.NoRetry() disables retries.
func WithRetry(executor *retry.Executor) Option {
	return func(r *Relocator) {
		r.retrier = executor
	}
}

// NewRelocator creates a relocator over the OS filesystem.
func NewRelocator(logger fidsort.Logger, opts ...Option) *Relocator {
	return NewRelocatorWithFS(filesystem.NewOSFileSystem(), logger, opts...)
}

// NewRelocatorWithFS creates a relocator with a custom filesystem provider.
// Panics if fsProvider is nil. A nil logger discards output.
func NewRelocatorWithFS(fsProvider filesystem.FileSystemProvider, logger fidsort.Logger, opts ...Option) *Relocator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	r := &Relocator{
		fsProvider: fsProvider,
		logger:     logger,
		locks:      &RootLocks{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.retrier == nil {
		r.retrier = retry.NewExecutor(retry.NewFileSystemClassifier(), retry.NewExponentialBackoff(renameRetries)).
			WithOnRetry(func(attempt int, err error, delay time.Duration) {
				r.logger.Verbose("Move blocked (%v), retrying in %v", err, delay.Round(time.Millisecond))
			})
	}
	return r
}

// Relocate processes files in order and returns one outcome per record.
//
// The caller's records are trusted as submitted: only Status Ready moves a
// file, and FID and Name are taken from the record rather than re-read.
// Returns an error wrapping fidsort.ErrInvalidInput when rootPath is blank
// or files is nil. A relative rootPath is resolved against the working
// directory, matching the absolute paths the scanner reports.
func (r *Relocator) Relocate(rootPath string, files []fidsort.FileRecord) (fidsort.RelocationResult, error) {
	if strings.TrimSpace(rootPath) == "" {
		return fidsort.RelocationResult{}, fmt.Errorf("%w: folder path is required", fidsort.ErrInvalidInput)
	}
	if files == nil {
		return fidsort.RelocationResult{}, fmt.Errorf("%w: file list is required", fidsort.ErrInvalidInput)
	}
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fidsort.RelocationResult{}, fmt.Errorf("failed to resolve %s: %w", rootPath, err)
	}
	rootPath = absRoot

	unlock := r.locks.Lock(rootPath)
	defer unlock()

	result := fidsort.RelocationResult{
		Results: make([]fidsort.RelocationOutcome, 0, len(files)),
	}
	for _, file := range files {
		outcome := r.relocateOne(rootPath, file)
		if outcome.Status == fidsort.OutcomeError {
			r.logger.Error("Failed to move %s: %s", file.RelativePath, outcome.Message)
		} else {
			r.logger.Verbose("%s: %s", file.RelativePath, outcome.Label())
		}
		result.Results = append(result.Results, outcome)
	}
	return result, nil
}

func (r *Relocator) relocateOne(rootPath string, file fidsort.FileRecord) fidsort.RelocationOutcome {
	outcome := fidsort.RelocationOutcome{File: file.RelativePath}

	if file.Status != fidsort.StatusReady {
		outcome.Status = fidsort.OutcomeSkipped
		return outcome
	}

	fail := func(err error) fidsort.RelocationOutcome {
		outcome.Status = fidsort.OutcomeError
		outcome.Message = err.Error()
		return outcome
	}

	fid := strings.TrimSpace(file.FID)
	if err := validateFID(fid); err != nil {
		return fail(err)
	}

	name := SanitizeName(file.Name)
	targetDir := filepath.Join(rootPath, fid)
	targetPath := filepath.Join(targetDir, TargetFileName(name, fid))

	if err := r.fsProvider.MkdirAll(targetDir); err != nil {
		return fail(fmt.Errorf("failed to create %s: %w", targetDir, err))
	}

	if source, err := filepath.Abs(file.FullPath); err == nil && strings.EqualFold(source, targetPath) {
		outcome.Status = fidsort.OutcomeSkippedAlreadyCorrect
		outcome.TargetPath = targetPath
		return outcome
	}

	exists, err := r.exists(targetPath)
	if err != nil {
		return fail(err)
	}

	outcome.Status = fidsort.OutcomeSuccess
	if exists {
		targetPath, err = r.freeCollisionPath(targetDir, name, fid)
		if err != nil {
			return fail(err)
		}
		outcome.Status = fidsort.OutcomeSuccessRenamed
	}

	err = r.retrier.Execute(context.Background(), func(context.Context) error {
		return r.fsProvider.Rename(file.FullPath, targetPath)
	})
	if err != nil {
		return fail(err)
	}
	outcome.TargetPath = targetPath
	return outcome
}

// freeCollisionPath returns the first {name}_{fid}_{millis}.xlsx in dir that
// does not exist, starting at the current time.
func (r *Relocator) freeCollisionPath(dir, name, fid string) (string, error) {
	millis := r.now().UnixMilli()
	for i := 0; i < maxCollisionAttempts; i++ {
		candidate := filepath.Join(dir, CollisionFileName(name, fid, millis+int64(i)))
		exists, err := r.exists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", TargetFileName(name, fid), dir)
}

func (r *Relocator) exists(p string) (bool, error) {
	_, err := r.fsProvider.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", p, err)
}

// validateFID rejects identifiers that cannot be used as a single folder
// name directly under the root.
func validateFID(fid string) error {
	switch {
	case fid == "":
		return errors.New("identifier is empty")
	case fid == "." || fid == "..":
		return fmt.Errorf("identifier %q is not a valid folder name", fid)
	case strings.ContainsAny(fid, `/\`):
		return fmt.Errorf("identifier %q contains a path separator", fid)
	}
	return nil
}

// SanitizeName trims s and keeps only ASCII letters, digits and spaces.
func SanitizeName(s string) string {
	var b strings.Builder
	for _, c := range strings.TrimSpace(s) {
		if c == ' ' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// TargetFileName is the canonical name of a relocated file.
func TargetFileName(name, fid string) string {
	return name + "_" + fid + fidsort.TargetExtension
}

// CollisionFileName is the name used when the canonical one is taken.
func CollisionFileName(name, fid string, unixMillis int64) string {
	return name + "_" + fid + "_" + strconv.FormatInt(unixMillis, 10) + fidsort.TargetExtension
}

var _ fidsort.Relocator = (*Relocator)(nil)
