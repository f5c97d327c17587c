package core

// convert.go turns raw cell text from extract files into counts.
//
// Extract files are frequently round-tripped through spreadsheets, so cells
// arrive with thousands separators, Excel formula prefixes (="123"), stray
// quotes, and the occasional fractional value. Counts are parsed through
// pgtype.Numeric so that arbitrary-precision input is accepted and then
// truncated to an integer.

import (
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ToNumeric converts a string to pgtype.Numeric.
// Handles thousands separators in both western and Indian grouping.
func ToNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Numeric{Valid: false}
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.TrimSpace(s)

	if !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}

	return n
}

// ParseCount converts a count cell to an integer.
// Empty cells are zero. Fractional values are truncated toward zero.
// The second return value is false when the cell holds text that is not a
// number or a negative number; the count is then zero.
func ParseCount(s string) (int64, bool) {
	s = CleanCell(s)
	if s == "" {
		return 0, true
	}

	n := ToNumeric(s)
	if !n.Valid {
		return 0, false
	}

	if i, err := n.Int64Value(); err == nil && i.Valid {
		if i.Int64 < 0 {
			return 0, false
		}
		return i.Int64, true
	}

	f, err := n.Float64Value()
	if err != nil || !f.Valid || f.Float64 < 0 {
		return 0, false
	}
	return int64(f.Float64), true
}

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		idx[key] = i
	}
	return idx
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	// Remove leading '='
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	// Remove any surrounding quotes
	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// cell returns the cleaned value at pos, or "" when the row is short.
func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// IsEmptyRow reports whether every cell in the row is blank.
func IsEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
