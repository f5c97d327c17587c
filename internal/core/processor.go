package core

import "log/slog"

// FileOutcome records what happened to one input table.
type FileOutcome string

const (
	OutcomeApplied  FileOutcome = "applied"
	OutcomeRejected FileOutcome = "rejected"
	OutcomeSkipped  FileOutcome = "skipped"
)

// FileResult summarises the processing of one table.
type FileResult struct {
	Source   string
	Category Category
	Outcome  FileOutcome
	Rows     int
	Total    int64
}

// Processor drives tables through detection, validation, normalization and
// aggregation into a single Summary. It is not safe for concurrent use: one
// Processor serves exactly one run.
type Processor struct {
	summary    *Summary
	normalizer *LocationNormalizer
	logger     *slog.Logger
	results    []FileResult
	finalized  bool
}

// NewProcessor creates a processor accumulating into a fresh Summary.
// A nil logger falls back to slog.Default().
func NewProcessor(normalizer *LocationNormalizer, logger *slog.Logger) *Processor {
	if normalizer == nil {
		normalizer = NewLocationNormalizer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		summary:    NewSummary(),
		normalizer: normalizer,
		logger:     logger,
	}
}

// Summary returns the accumulator.
func (p *Processor) Summary() *Summary {
	return p.summary
}

// Results returns the per-table outcomes in processing order.
func (p *Processor) Results() []FileResult {
	out := make([]FileResult, len(p.results))
	copy(out, p.results)
	return out
}

// Report records an issue that arose outside table processing, such as an
// unreadable file or a broken archive.
func (p *Processor) Report(sev Severity, source, message string) {
	p.summary.Validation.Add(sev, source, message)
	if sev == SeverityCritical {
		p.logger.Error("input rejected", "source", source, "reason", message)
	} else {
		p.logger.Warn("input warning", "source", source, "reason", message)
	}
}

// ProcessTable runs one table through the pipeline. Problems are recorded in
// the Summary's validation report; they never abort the run.
func (p *Processor) ProcessTable(t Table) FileResult {
	result := p.processTable(t)
	p.results = append(p.results, result)

	p.logger.Info("file processed",
		"source", result.Source,
		"category", result.Category,
		"outcome", result.Outcome,
		"rows", result.Rows,
		"total", result.Total,
	)
	return result
}

func (p *Processor) processTable(t Table) FileResult {
	header := MakeHeaderIndex(t.Header)
	result := FileResult{Source: t.Source, Category: DetectCategory(header)}

	schema, ok := Get(result.Category)
	if !ok {
		p.Report(SeverityWarning, t.Source, "unrecognized file category; no known count columns found")
		result.Outcome = OutcomeSkipped
		return result
	}

	if !ValidateTable(t, header, p.summary.Validation) {
		result.Outcome = OutcomeRejected
		return result
	}

	normalized := p.normalizer.NormalizeTable(t, header)
	agg, err := Aggregate(p.summary, schema, normalized, header)
	if err != nil {
		p.Report(SeverityCritical, t.Source, "aggregation failed: "+err.Error())
		result.Outcome = OutcomeRejected
		return result
	}

	if agg.InvalidCells > 0 {
		p.summary.Validation.Addf(SeverityWarning, t.Source,
			"%d non-numeric or negative count values treated as 0", agg.InvalidCells)
	}

	result.Outcome = OutcomeApplied
	result.Rows = agg.Rows
	result.Total = agg.Total
	return result
}

// Finalize scores districts and generates insights, then returns the
// Summary. Calling it again recomputes the same result.
func (p *Processor) Finalize() *Summary {
	ScoreDistricts(p.summary)
	p.summary.Insights = GenerateInsights(p.summary)
	p.finalized = true

	p.logger.Info("run finalized",
		"status", p.summary.Validation.Status(),
		"files", len(p.results),
		"districts", p.summary.DistrictScores.Len(),
	)
	return p.summary
}

// Finalized reports whether Finalize has run.
func (p *Processor) Finalized() bool {
	return p.finalized
}
