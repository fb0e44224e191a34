package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vvka-141/fidsort/internal/files/filesystem"
	"github.com/vvka-141/fidsort/internal/logging"
	"github.com/vvka-141/fidsort/internal/workbook"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// Scanner discovers spreadsheets under a root directory and classifies each
// by the identifier found in its first data row.
// Scanner never modifies the filesystem. It is safe for concurrent use as
// long as the workbook reader and fsProvider are.
type Scanner struct {
	reader     workbook.Reader
	fsProvider filesystem.FileSystemProvider
	logger     fidsort.Logger
	cache      *lru.Cache[cacheKey, workbook.Sheet]
}

// cacheKey identifies one version of a file on disk.
type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if reader is nil. A nil logger discards output.
func NewScanner(reader workbook.Reader, logger fidsort.Logger) *Scanner {
	return NewScannerWithFS(reader, filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if reader or fsProvider is nil.
func NewScannerWithFS(reader workbook.Reader, fsProvider filesystem.FileSystemProvider, logger fidsort.Logger) *Scanner {
	if reader == nil {
		panic("reader cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		reader:     reader,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// EnableCache keeps the extracted first record of up to size workbooks.
// Entries are keyed by path, size and modification time, so an edited file
// is read again. Used by the HTTP server, where a UI previews the same
// folder repeatedly.
func (s *Scanner) EnableCache(size int) error {
	cache, err := lru.New[cacheKey, workbook.Sheet](size)
	if err != nil {
		return fmt.Errorf("failed to create extraction cache: %w", err)
	}
	s.cache = cache
	return nil
}

// ScanDirectory lists the spreadsheets under rootPath and classifies each.
//
// With deepScan false only direct children of rootPath are considered.
// With deepScan true every subdirectory is visited; subdirectories that
// cannot be read are skipped and counted in SkippedUnreadableDirs.
// Workbooks without data rows are left out and counted in SkippedEmpty.
//
// Returns an error wrapping fidsort.ErrInvalidInput when rootPath does not
// name an existing directory. Problems with individual files never fail the
// scan; they are reported through the record status.
func (s *Scanner) ScanDirectory(rootPath string, deepScan bool) (fidsort.ScanResult, error) {
	if strings.TrimSpace(rootPath) == "" {
		return fidsort.ScanResult{}, fmt.Errorf("%w: folder path is required", fidsort.ErrInvalidInput)
	}

	dir, err := s.fsProvider.Open(rootPath)
	if err != nil {
		return fidsort.ScanResult{}, fmt.Errorf("%w: %w", fidsort.ErrInvalidInput, err)
	}

	var candidates []filesystem.File
	var result fidsort.ScanResult
	if deepScan {
		candidates, result.SkippedUnreadableDirs, err = s.discoverDeep(dir)
	} else {
		candidates, err = s.discoverShallow(dir)
	}
	if err != nil {
		return fidsort.ScanResult{}, err
	}

	s.logger.Verbose("Found %d spreadsheet(s) under %s", len(candidates), dir.Path())

	result.Files = make([]fidsort.FileRecord, 0, len(candidates))
	for _, file := range candidates {
		record, ok := s.classify(file)
		if !ok {
			result.SkippedEmpty++
			continue
		}
		result.Files = append(result.Files, record)
	}

	if result.SkippedEmpty > 0 {
		s.logger.Verbose("Skipped %d workbook(s) without data rows", result.SkippedEmpty)
	}
	if result.SkippedUnreadableDirs > 0 {
		s.logger.Verbose("Skipped %d unreadable director(ies)", result.SkippedUnreadableDirs)
	}

	return result, nil
}

func (s *Scanner) discoverShallow(dir filesystem.Directory) ([]filesystem.File, error) {
	entries, err := dir.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir.Path(), err)
	}

	var files []filesystem.File
	for _, entry := range entries {
		if entry.Info().IsDir() {
			continue
		}
		if s.isCandidate(entry.Info().Name()) {
			files = append(files, entry)
		}
	}
	return files, nil
}

func (s *Scanner) discoverDeep(dir filesystem.Directory) ([]filesystem.File, int, error) {
	var files []filesystem.File
	unreadable := 0

	err := dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			if file == nil || file.Info() == nil {
				// Entry disappeared during the walk.
				return nil
			}
			if file.RelativePath() == "." {
				return fmt.Errorf("failed to list %s: %w", dir.Path(), err)
			}
			if file.Info().IsDir() {
				s.logger.Verbose("Skipping unreadable directory %s: %v", file.Path(), err)
				unreadable++
			}
			return nil
		}

		if file.Info().IsDir() {
			return nil
		}
		if s.isCandidate(file.Info().Name()) {
			files = append(files, file)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return files, unreadable, nil
}

// isCandidate reports whether a file name is a spreadsheet worth opening.
// Extension matching is case-sensitive; editor lock files are excluded.
func (s *Scanner) isCandidate(name string) bool {
	if !hasSpreadsheetExtension(name) {
		return false
	}
	if strings.HasPrefix(name, fidsort.LockFilePrefix) {
		s.logger.Verbose("Ignoring lock file %s", name)
		return false
	}
	return true
}

func hasSpreadsheetExtension(name string) bool {
	for _, ext := range fidsort.SpreadsheetExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// classify builds the record for one file. ok is false when the workbook
// has no data rows and must be left out of the result.
func (s *Scanner) classify(file filesystem.File) (record fidsort.FileRecord, ok bool) {
	record = fidsort.FileRecord{
		FullPath:     file.Path(),
		RelativePath: file.RelativePath(),
		FileName:     file.Info().Name(),
	}

	sheet, err := s.extract(file)
	if err != nil {
		s.logger.Error("Cannot read %s: %v", record.RelativePath, err)
		record.Status = fidsort.StatusUnreadable
		return record, true
	}
	if !sheet.HasData() {
		s.logger.Verbose("No data rows in %s", record.RelativePath)
		return fidsort.FileRecord{}, false
	}

	fidField, found := sheet.Find(fidsort.IdentifierField)
	fid := strings.TrimSpace(fidField.Value)
	if !found || fid == "" {
		record.Status = fidsort.StatusNoIdentifier
		return record, true
	}

	record.FID = fid
	record.Name = fidsort.UnknownName
	if nameField, found := sheet.Find(fidsort.NameField); found {
		record.Name = nameField.Value
	}

	parent := filepath.Base(filepath.Dir(record.FullPath))
	if parent == fid {
		record.Status = fidsort.StatusAlreadySorted
	} else {
		record.Status = fidsort.StatusReady
	}
	return record, true
}

func (s *Scanner) extract(file filesystem.File) (workbook.Sheet, error) {
	var key cacheKey
	if s.cache != nil {
		info := file.Info()
		key = cacheKey{path: file.Path(), size: info.Size(), modTime: info.ModTime().UnixNano()}
		if sheet, ok := s.cache.Get(key); ok {
			return sheet, nil
		}
	}

	content, err := file.ReadContent()
	if err != nil {
		return workbook.Sheet{}, fmt.Errorf("failed to read file: %w", err)
	}

	sheet, err := s.reader.FirstRecord(file.Info().Name(), content)
	if err != nil {
		return workbook.Sheet{}, err
	}

	if s.cache != nil {
		s.cache.Add(key, sheet)
	}
	return sheet, nil
}

// Verify Scanner implements the interface at compile time
var _ fidsort.FileScanner = (*Scanner)(nil)
