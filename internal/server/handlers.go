package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/vvka-141/fidsort/internal/files/dirlist"
	"github.com/vvka-141/fidsort/internal/logging"
	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// maxBodyBytes bounds request bodies; a sort request carries one record per
// file, so this allows tens of thousands of files.
const maxBodyBytes = 16 << 20

// DirLister lists one directory level.
type DirLister interface {
	List(path string) (dirlist.Listing, error)
}

// API serves the JSON endpoints.
type API struct {
	scanner   fidsort.FileScanner
	relocator fidsort.Relocator
	lister    DirLister
	logger    fidsort.Logger
}

// NewAPI wires the handlers. A nil logger discards output.
func NewAPI(scanner fidsort.FileScanner, relocator fidsort.Relocator, lister DirLister, logger fidsort.Logger) *API {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &API{
		scanner:   scanner,
		relocator: relocator,
		lister:    lister,
		logger:    logger,
	}
}

// Handler returns the routed API with CORS and request IDs applied.
func (a *API) Handler(corsOrigin string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/preview", a.handlePreview)
	mux.HandleFunc("POST /api/sort", a.handleSort)
	mux.HandleFunc("POST /api/list-dirs", a.handleListDirs)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return WithRequestID(a.logger)(CORS(corsOrigin)(mux))
}

type previewRequest struct {
	FolderPath string `json:"folderPath"`
	DeepScan   bool   `json:"deepScan"`
}

type previewResponse struct {
	Files []fidsort.FileRecord `json:"files"`
}

func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	var in previewRequest
	if !decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.FolderPath) == "" {
		writeError(w, http.StatusBadRequest, "Invalid folder path")
		return
	}

	result, err := a.scanner.ScanDirectory(in.FolderPath, in.DeepScan)
	if err != nil {
		if errors.Is(err, fidsort.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Invalid folder path")
			return
		}
		a.logger.Error("[%s] preview %s: %v", RequestID(r.Context()), in.FolderPath, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{Files: result.Files})
}

type sortRequest struct {
	FolderPath string                `json:"folderPath"`
	Files      *[]fidsort.FileRecord `json:"files"`
}

type sortResponse struct {
	Results []fidsort.RelocationOutcome `json:"results"`
}

func (a *API) handleSort(w http.ResponseWriter, r *http.Request) {
	var in sortRequest
	if !decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.FolderPath) == "" || in.Files == nil {
		writeError(w, http.StatusBadRequest, "Missing data")
		return
	}

	files := *in.Files
	if files == nil {
		files = []fidsort.FileRecord{}
	}

	result, err := a.relocator.Relocate(in.FolderPath, files)
	if err != nil {
		if errors.Is(err, fidsort.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Missing data")
			return
		}
		a.logger.Error("[%s] sort %s: %v", RequestID(r.Context()), in.FolderPath, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := result.Summary()
	a.logger.Info("Sorted %s: %d moved, %d skipped, %d failed", in.FolderPath, summary.Moved, summary.Skipped, summary.Failed)
	writeJSON(w, http.StatusOK, sortResponse{Results: result.Results})
}

type listDirsRequest struct {
	Path string `json:"path"`
}

func (a *API) handleListDirs(w http.ResponseWriter, r *http.Request) {
	var in listDirsRequest
	if !decode(w, r, &in) {
		return
	}

	listing, err := a.lister.List(in.Path)
	if err != nil {
		if errors.Is(err, fidsort.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Path does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// decode reads a JSON body into v. An empty body leaves v at its zero
// value. On failure it writes a 400 and returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeError(w, http.StatusBadRequest, "invalid json body")
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
