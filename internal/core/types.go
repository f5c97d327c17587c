package core

import "strings"

// Category classifies an input table by the count columns it carries.
type Category string

const (
	CategoryEnrolment   Category = "enrolment"
	CategoryBiometric   Category = "biometric"
	CategoryDemographic Category = "demographic"
	CategoryUnknown     Category = "unknown"
)

// AgeBucket names one of the fixed histogram buckets in AgeCounts.
type AgeBucket string

const (
	Age0To5   AgeBucket = "0-5"
	Age5To18  AgeBucket = "5-18"
	Age18To45 AgeBucket = "18-45"
	Age45To60 AgeBucket = "45-60"
	Age60Plus AgeBucket = "60+"
)

// MatchKind selects how a Marker compares against a column name.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchContains
)

// Marker is a column-name test used to recognise a category.
type Marker struct {
	Kind  MatchKind
	Token string // lowercase
}

// Matches reports whether a lowercased column name satisfies the marker.
func (m Marker) Matches(column string) bool {
	switch m.Kind {
	case MatchContains:
		return strings.Contains(column, m.Token)
	default:
		return column == m.Token
	}
}

// CountSpec is one numeric column a category sums.
type CountSpec struct {
	Name   string    // Column header name, matched case-insensitively
	Bucket AgeBucket // Histogram bucket the column's sub-total lands in
}

// CategorySchema describes how a category is recognised and aggregated.
type CategorySchema struct {
	Category Category
	Label    string // Display name: "Biometric updates"
	Priority int    // Lower values are tried first during detection
	Markers  []Marker
	Counts   []CountSpec
}

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// Table is one rectangular input table: a header row plus data rows.
type Table struct {
	Source string // File or archive entry the table was read from
	Header []string
	Rows   [][]string
}

// CategoryTotals holds one district's running totals per category.
type CategoryTotals struct {
	Enrolment   int64
	Biometric   int64
	Demographic int64
}

// Get returns the total recorded for a category.
func (c CategoryTotals) Get(cat Category) int64 {
	switch cat {
	case CategoryEnrolment:
		return c.Enrolment
	case CategoryBiometric:
		return c.Biometric
	case CategoryDemographic:
		return c.Demographic
	default:
		return 0
	}
}

func (c *CategoryTotals) add(cat Category, n int64) {
	switch cat {
	case CategoryEnrolment:
		c.Enrolment += n
	case CategoryBiometric:
		c.Biometric += n
	case CategoryDemographic:
		c.Demographic += n
	}
}
