package web

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/ingest"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/logging"
)

// uploadField is the multipart field holding the extract files.
const uploadField = "files"

// latestKey is the cache entry pointing at the most recent analysis ID.
const latestKey = "latest"

var (
	errAnalysisNotFound    = errors.New("analysis not found")
	errSummaryNotAvailable = errors.New("summary not available")
)

// analysis is a finished run as served by the API.
type analysis struct {
	ID      string          `json:"id"`
	Created time.Time       `json:"created"`
	Status  core.Status     `json:"status"`
	Files   []fileView      `json:"files"`
	Issues  []issueView     `json:"issues"`
	Summary json.RawMessage `json:"summary"`
}

type fileView struct {
	Source   string           `json:"source"`
	Category core.Category    `json:"category"`
	Outcome  core.FileOutcome `json:"outcome"`
	Rows     int              `json:"rows"`
	Total    int64            `json:"total"`
}

// issueView is a validation issue with its error catalog code.
type issueView struct {
	Severity core.Severity `json:"severity"`
	Source   string        `json:"source,omitempty"`
	Message  string        `json:"message"`
	Code     string        `json:"code"`
	Action   string        `json:"action"`
}

func newAnalysis(run *ingest.Run) (analysis, error) {
	doc, err := json.Marshal(run.Summary)
	if err != nil {
		return analysis{}, err
	}

	files := make([]fileView, len(run.Files))
	for i, f := range run.Files {
		files[i] = fileView{
			Source:   f.Source,
			Category: f.Category,
			Outcome:  f.Outcome,
			Rows:     f.Rows,
			Total:    f.Total,
		}
	}

	issues := []issueView{}
	for _, issue := range run.Summary.Validation.Issues() {
		msg := issue.UserMessage()
		issues = append(issues, issueView{
			Severity: issue.Severity,
			Source:   issue.Source,
			Message:  issue.Message,
			Code:     msg.Code,
			Action:   msg.Action,
		})
	}

	return analysis{
		ID:      run.ID.String(),
		Created: run.Started,
		Status:  run.Status(),
		Files:   files,
		Issues:  issues,
		Summary: doc,
	}, nil
}

// handleAnalyze runs the uploaded files as one analysis and caches the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.limiter.Acquire(ctx); err != nil {
		status := http.StatusServiceUnavailable
		if !errors.Is(err, ErrTooManyAnalyses) {
			status = http.StatusRequestTimeout
		}
		respondError(w, r, err, status)
		return
	}
	defer s.limiter.Release()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxRequestSize)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			respondError(w, r, err, http.StatusRequestEntityTooLarge)
			return
		}
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		respondError(w, r, ingest.ErrNoInput, http.StatusBadRequest)
		return
	}

	sources, closeAll, err := openUploads(headers)
	defer closeAll()
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logging.FromContext(ctx).Info("analysis requested", "files", len(sources))

	run, err := s.pipeline.RunSources(ctx, sources)
	if err != nil {
		respondError(w, r, err, http.StatusRequestTimeout)
		return
	}

	a, err := newAnalysis(run)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.analyses.Set(a.ID, a, cache.DefaultExpiration)
	s.analyses.Set(latestKey, a.ID, cache.DefaultExpiration)

	writeJSON(w, r, http.StatusCreated, a)
}

// openUploads opens every uploaded part. The returned close function is
// always safe to call.
func openUploads(headers []*multipart.FileHeader) ([]ingest.Source, func(), error) {
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	sources := make([]ingest.Source, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		files = append(files, f)
		sources = append(sources, ingest.Source{
			Name:   filepath.Base(fh.Filename),
			Reader: f,
			Size:   fh.Size,
		})
	}
	return sources, closeAll, nil
}

// lookup returns a cached analysis. The ID "latest" resolves to the most
// recent one.
func (s *Server) lookup(id string) (analysis, bool) {
	if id == latestKey {
		v, ok := s.analyses.Get(latestKey)
		if !ok {
			return analysis{}, false
		}
		id, _ = v.(string)
	}

	v, ok := s.analyses.Get(id)
	if !ok {
		return analysis{}, false
	}
	a, ok := v.(analysis)
	return a, ok
}

// handleGetAnalysis returns a cached analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, r, errAnalysisNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, a)
}

// handleSummary serves the summary file written by the batch processor.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.cfg.Output.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			respondError(w, r, errSummaryNotAvailable, http.StatusNotFound)
			return
		}
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleHealth reports liveness and analysis capacity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"analyses": s.limiter.Status(),
		"cached":   s.analyses.ItemCount(),
	})
}
