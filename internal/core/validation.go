package core

// validation.go checks a table's structure before it is aggregated.
//
// Validation happens at two levels:
//  1. Header validation: the mandatory location columns must be present,
//     otherwise the file is rejected with a CRITICAL issue.
//  2. Row validation: every pincode must be exactly six digits. Bad pincodes
//     only raise a WARNING; the rows are still aggregated.
//
// Issues accumulate in a ValidationReport whose status only ever escalates.

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Status is the overall outcome of a run.
type Status string

const (
	StatusPass             Status = "PASS"
	StatusPassWithWarnings Status = "PASS_WITH_WARNINGS"
	StatusFail             Status = "FAIL"
)

func (s Status) rank() int {
	switch s {
	case StatusPassWithWarnings:
		return 1
	case StatusFail:
		return 2
	default:
		return 0
	}
}

func (sev Severity) status() Status {
	if sev == SeverityCritical {
		return StatusFail
	}
	return StatusPassWithWarnings
}

// MandatoryColumns must be present in every table, whatever its category.
var MandatoryColumns = []string{"state", "district", "pincode"}

// pincodeRegex matches an Indian postal index number.
var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// ErrMissingColumn is wrapped by errors about absent columns.
var ErrMissingColumn = errors.New("missing column")

// Issue is one recorded validation problem.
type Issue struct {
	Severity Severity
	Source   string // File or archive entry, empty for run-level issues
	Message  string
}

func (i Issue) String() string {
	if i.Source == "" {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Source, i.Message)
}

// UserMessage returns the error catalog entry matching the issue.
func (i Issue) UserMessage() UserMessage {
	return MapMessage(i.Message)
}

// ValidationReport collects issues for a run.
// The zero value is not usable; create one with NewValidationReport.
type ValidationReport struct {
	status Status
	issues []Issue
}

// NewValidationReport returns an empty report with status PASS.
func NewValidationReport() *ValidationReport {
	return &ValidationReport{status: StatusPass, issues: []Issue{}}
}

// Add records an issue and escalates the status. Status never downgrades.
func (r *ValidationReport) Add(sev Severity, source, message string) {
	r.issues = append(r.issues, Issue{Severity: sev, Source: source, Message: message})
	if next := sev.status(); next.rank() > r.status.rank() {
		r.status = next
	}
}

// Addf records a formatted issue.
func (r *ValidationReport) Addf(sev Severity, source, format string, args ...any) {
	r.Add(sev, source, fmt.Sprintf(format, args...))
}

// Status returns the worst status seen so far.
func (r *ValidationReport) Status() Status {
	return r.status
}

// Issues returns a copy of the recorded issues in insertion order.
func (r *ValidationReport) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// MarshalJSON renders the report as {"status": ..., "issues": ["[SEV] ...", ...]}.
func (r *ValidationReport) MarshalJSON() ([]byte, error) {
	issues := make([]string, len(r.issues))
	for i, issue := range r.issues {
		issues[i] = issue.String()
	}
	return json.Marshal(struct {
		Status Status   `json:"status"`
		Issues []string `json:"issues"`
	}{r.status, issues})
}

// MissingColumns returns the required columns absent from header, in order.
func MissingColumns(header HeaderIndex, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := header[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateHeaders checks that every required column exists in the header.
// Returns an error wrapping ErrMissingColumn that lists all missing columns.
func ValidateHeaders(header HeaderIndex, required []string) error {
	if missing := MissingColumns(header, required); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateTable applies the mandatory-column and pincode checks to a table,
// recording issues in report. It returns false when the table must be
// rejected.
func ValidateTable(t Table, header HeaderIndex, report *ValidationReport) bool {
	if missing := MissingColumns(header, MandatoryColumns); len(missing) > 0 {
		report.Addf(SeverityCritical, t.Source, "missing mandatory columns: %s", strings.Join(missing, ", "))
		return false
	}

	pos := header["pincode"]
	invalid := 0
	for _, row := range t.Rows {
		if IsEmptyRow(row) {
			continue
		}
		if !pincodeRegex.MatchString(cell(row, pos)) {
			invalid++
		}
	}

	if invalid > 0 {
		report.Addf(SeverityWarning, t.Source, "%d rows have an invalid pincode (expected 6 digits)", invalid)
	}
	return true
}
