// Package core provides the analytics engine for UIDAI enrolment and update
// extracts.
//
// This package holds all domain logic independent of file formats, the CLI,
// or the HTTP server. It can be used by batch tools, web handlers, or tests
// without modification.
//
// # Architecture
//
// A run moves every input table through the same pipeline:
//
//	Table -> DetectCategory -> ValidateTable -> LocationNormalizer -> Aggregate
//
// and, once all tables are consumed:
//
//	ScoreDistricts -> GenerateInsights
//
// [Processor] drives this flow and owns the run's [Summary].
//
// # Category Registry
//
// Categories are registered at init time using [Register]. Each
// [CategorySchema] lists the marker columns that identify it and the count
// columns it sums:
//
//	core.Register(core.CategorySchema{
//	    Category: core.CategoryBiometric,
//	    Label:    "Biometric updates",
//	    Priority: 1,
//	    Markers:  []core.Marker{{Kind: core.MatchContains, Token: "bio_age"}},
//	    Counts: []core.CountSpec{
//	        {Name: "bio_age_5_17", Bucket: core.Age5To18},
//	        {Name: "bio_age_17_", Bucket: core.Age18To45},
//	    },
//	})
//
// Detection walks schemas in ascending priority; the first schema with a
// matching marker wins.
//
// # Failure Policy
//
// Nothing in a run is fatal. Problems become [Issue]s in the Summary's
// [ValidationReport]: CRITICAL issues reject a file, WARNING issues do not.
// The report's status only escalates (PASS, PASS_WITH_WARNINGS, FAIL).
//
// Aggregation is staged per file and applied in one step, so a file that
// fails part way contributes nothing.
//
// # Output Ordering
//
// Location breakdowns are [OrderedMap]s: keys marshal in the order they were
// first recorded. district_scores is re-ordered by score, highest first,
// with ties keeping first-seen order.
package core
