// Package ingest reads extract files from disk or memory and drives them
// through a core.Processor as one run.
//
// Supported inputs are .csv files, .zip archives of CSV files, and flat
// .parquet files. A directory argument expands to the supported files it
// directly contains. Every problem with an input is recorded as an issue on
// the run's validation report; only cancellation or an empty input list
// stop a run.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/logging"
)

// DefaultMaxFileSize is the per-file limit used when Options leaves it unset.
const DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

// ErrNoInput is returned when a run is started without any files.
var ErrNoInput = errors.New("no file provided")

const (
	extCSV     = ".csv"
	extZIP     = ".zip"
	extParquet = ".parquet"
)

// Supported reports whether a file name has an extension the pipeline reads.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case extCSV, extZIP, extParquet:
		return true
	}
	return false
}

// Source is an in-memory or already-open input.
type Source struct {
	Name   string
	Reader io.ReaderAt
	Size   int64
}

// Options tunes a Pipeline.
type Options struct {
	MaxFileSize int64 // Bytes; zero means DefaultMaxFileSize
}

// Pipeline starts runs. It holds no per-run state and is safe for
// concurrent use.
type Pipeline struct {
	normalizer *core.LocationNormalizer
	opts       Options
}

// NewPipeline creates a pipeline that normalizes locations with normalizer.
func NewPipeline(normalizer *core.LocationNormalizer, opts Options) *Pipeline {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	return &Pipeline{normalizer: normalizer, opts: opts}
}

// Run is the outcome of one pipeline execution.
type Run struct {
	ID       uuid.UUID
	Summary  *core.Summary
	Files    []core.FileResult
	Started  time.Time
	Duration time.Duration
}

// Status returns the run's validation status.
func (r *Run) Status() core.Status {
	return r.Summary.Validation.Status()
}

// run carries the state of one execution.
type run struct {
	pipeline *Pipeline
	proc     *core.Processor
	record   *Run
}

func (p *Pipeline) start(ctx context.Context) *run {
	id := uuid.New()
	logger := logging.WithFields(ctx, "run_id", id.String())
	logger.Info("run started")
	return &run{
		pipeline: p,
		proc:     core.NewProcessor(p.normalizer, logger),
		record:   &Run{ID: id, Started: time.Now()},
	}
}

func (r *run) finish(ctx context.Context) *Run {
	r.record.Summary = r.proc.Finalize()
	r.record.Files = r.proc.Results()
	r.record.Duration = time.Since(r.record.Started)

	logging.WithFields(ctx, "run_id", r.record.ID.String()).Info("run completed",
		"files", len(r.record.Files),
		"status", r.record.Status(),
		"issues", len(r.record.Summary.Validation.Issues()),
		"duration", r.record.Duration,
	)
	return r.record
}

// RunPaths processes files and directories from disk in the order given.
func (p *Pipeline) RunPaths(ctx context.Context, paths []string) (*Run, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	r := p.start(ctx)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.path(ctx, path)
	}
	// A cancel during the last input must not produce a summary.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.finish(ctx), nil
}

// RunSources processes already-open inputs in the order given.
func (p *Pipeline) RunSources(ctx context.Context, sources []Source) (*Run, error) {
	if len(sources) == 0 {
		return nil, ErrNoInput
	}

	r := p.start(ctx)
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.source(ctx, src.Name, src.Reader, src.Size)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.finish(ctx), nil
}

func (r *run) path(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		r.proc.Report(core.SeverityCritical, path, fmt.Sprintf("unreadable file: %v", err))
		return
	}

	if !info.IsDir() {
		r.file(ctx, path)
		return
	}

	files, err := listDir(path)
	if err != nil {
		r.proc.Report(core.SeverityCritical, path, fmt.Sprintf("unreadable directory: %v", err))
		return
	}
	if len(files) == 0 {
		r.proc.Report(core.SeverityWarning, path, "no supported files found in directory")
		return
	}
	for _, f := range files {
		if ctx.Err() != nil {
			return
		}
		r.file(ctx, f)
	}
}

// listDir returns the supported files directly inside dir, sorted by name.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && Supported(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *run) file(ctx context.Context, path string) {
	f, err := os.Open(path)
	if err != nil {
		r.proc.Report(core.SeverityCritical, path, fmt.Sprintf("unreadable file: %v", err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		r.proc.Report(core.SeverityCritical, path, fmt.Sprintf("unreadable file: %v", err))
		return
	}
	r.source(ctx, path, f, info.Size())
}

// source dispatches one input by extension.
func (r *run) source(ctx context.Context, name string, ra io.ReaderAt, size int64) {
	ext := strings.ToLower(filepath.Ext(name))
	if !Supported(name) {
		r.proc.Report(core.SeverityWarning, name, fmt.Sprintf("unsupported file type %q; skipped", ext))
		return
	}

	limit := r.pipeline.opts.MaxFileSize
	if size > limit {
		r.proc.Report(core.SeverityCritical, name,
			fmt.Sprintf("%v: %d bytes exceeds limit of %d", ErrFileTooLarge, size, limit))
		return
	}

	switch ext {
	case extCSV:
		t, err := ReadCSV(name, io.NewSectionReader(ra, 0, size))
		r.table(name, t, err)
	case extParquet:
		t, err := ReadParquet(name, ra, size)
		r.table(name, t, err)
	case extZIP:
		r.archive(ctx, name, ra, size)
	}
}

func (r *run) table(source string, t core.Table, err error) {
	if err != nil {
		r.proc.Report(core.SeverityCritical, source, err.Error())
		return
	}
	r.proc.ProcessTable(t)
}

func (r *run) archive(ctx context.Context, name string, ra io.ReaderAt, size int64) {
	n, err := WalkArchive(ctx, name, ra, size, r.pipeline.opts.MaxFileSize, func(e Entry) {
		r.table(e.Source, e.Table, e.Err)
	})
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		r.proc.Report(core.SeverityCritical, name, err.Error())
		return
	}
	if n == 0 {
		r.proc.Report(core.SeverityWarning, name, "no CSV files found in archive")
	}
}
