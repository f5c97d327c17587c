package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownLocation is the canonical key for rows with a blank state or district.
const UnknownLocation = "Unknown"

// LocationNormalizer canonicalises state and district names.
// State names go through an alias table before title casing; district names
// are only trimmed and title cased.
type LocationNormalizer struct {
	aliases map[string]string
}

// NewLocationNormalizer builds a normalizer from an alias table mapping
// spellings to canonical state names. Alias keys are matched after trimming
// and lowercasing.
func NewLocationNormalizer(aliases map[string]string) *LocationNormalizer {
	n := &LocationNormalizer{aliases: make(map[string]string, len(aliases))}
	for alias, canonical := range aliases {
		n.aliases[foldKey(alias)] = canonical
	}
	return n
}

// State returns the canonical display form of a state name.
func (n *LocationNormalizer) State(raw string) string {
	key := foldKey(raw)
	if key == "" {
		return UnknownLocation
	}
	if canonical, ok := n.aliases[key]; ok {
		key = canonical
	}
	return TitleCase(key)
}

// District returns the canonical display form of a district name.
func (n *LocationNormalizer) District(raw string) string {
	raw = collapseSpaces(raw)
	if raw == "" {
		return UnknownLocation
	}
	return TitleCase(raw)
}

// NormalizeTable returns a copy of t with its state and district cells
// canonicalised. The header must contain both columns.
func (n *LocationNormalizer) NormalizeTable(t Table, header HeaderIndex) Table {
	statePos, districtPos := header["state"], header["district"]

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if IsEmptyRow(row) {
			continue
		}
		width := max(len(row), statePos+1, districtPos+1)
		out := make([]string, width)
		copy(out, row)
		out[statePos] = n.State(cell(row, statePos))
		out[districtPos] = n.District(cell(row, districtPos))
		rows = append(rows, out)
	}

	return Table{Source: t.Source, Header: t.Header, Rows: rows}
}

// TitleCase capitalises the first letter of each word and lowercases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

func foldKey(s string) string {
	return strings.ToLower(collapseSpaces(s))
}

// collapseSpaces trims s and reduces internal whitespace runs to one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
