package core

import "testing"

// ----------------------------------------------------------------------------
// ToNumeric Tests
// ----------------------------------------------------------------------------

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{name: "positive integer", input: "123", wantValid: true},
		{name: "zero", input: "0", wantValid: true},
		{name: "negative integer", input: "-456", wantValid: true},
		{name: "decimal number", input: "123.45", wantValid: true},
		{name: "leading decimal point", input: ".99", wantValid: true},
		{name: "trailing decimal point", input: "99.", wantValid: true},
		{name: "thousands separator", input: "1,234,567", wantValid: true},
		{name: "indian grouping", input: "12,34,567", wantValid: true},
		{name: "surrounded by whitespace", input: "  123  ", wantValid: true},
		{name: "explicit positive sign", input: "+123", wantValid: true},

		// Scientific notation is rejected by pgtype.Numeric.Scan()
		{name: "scientific notation not supported", input: "1.5e10", wantValid: false},

		{name: "empty string", input: "", wantValid: false},
		{name: "only whitespace", input: "   ", wantValid: false},
		{name: "alphabetic string", input: "abc", wantValid: false},
		{name: "mixed alphanumeric", input: "12abc34", wantValid: false},
		{name: "multiple decimal points", input: "12.34.56", wantValid: false},
		{name: "double negative", input: "--123", wantValid: false},
		{name: "parentheses are not a sign", input: "(123)", wantValid: false},
		{name: "NaN", input: "NaN", wantValid: false},
		{name: "Infinity", input: "Infinity", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToNumeric(tt.input)
			if result.Valid != tt.wantValid {
				t.Errorf("ToNumeric(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseCount Tests
// ----------------------------------------------------------------------------

func TestParseCount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "plain integer", input: "85", want: 85, wantOK: true},
		{name: "empty cell is zero", input: "", want: 0, wantOK: true},
		{name: "blank cell is zero", input: "   ", want: 0, wantOK: true},
		{name: "quoted with separators", input: `"1,234"`, want: 1234, wantOK: true},
		{name: "excel text formula", input: `="42"`, want: 42, wantOK: true},
		{name: "fraction truncates", input: "2.9", want: 2, wantOK: true},
		{name: "trailing zero fraction", input: "10.0", want: 10, wantOK: true},
		{name: "negative is invalid", input: "-7", want: 0, wantOK: false},
		{name: "negative fraction is invalid", input: "-0.5", want: 0, wantOK: false},
		{name: "negative zero", input: "-0", want: 0, wantOK: true},
		{name: "parentheses are invalid", input: "(50)", want: 0, wantOK: false},
		{name: "text is invalid", input: "n/a", want: 0, wantOK: false},
		{name: "dash is invalid", input: "-", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCount(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseCount(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// CleanCell Tests
// ----------------------------------------------------------------------------

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple string unchanged", input: "Cuttack", want: "Cuttack"},
		{name: "empty string", input: "", want: ""},
		{name: "surrounded by whitespace", input: "  753001  ", want: "753001"},
		{name: "Excel formula with quotes", input: `="753001"`, want: "753001"},
		{name: "bare equals sign", input: "=SUM(A1)", want: "SUM(A1)"},
		{name: "double quotes removed", input: `"Odisha"`, want: "Odisha"},
		{name: "leading single quote (Excel text prefix)", input: "'012345", want: "012345"},
		{name: "whitespace and quotes", input: `  " Odisha "  `, want: "Odisha"},
		{name: "only quotes", input: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanCell(tt.input)
			if got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// MakeHeaderIndex Tests
// ----------------------------------------------------------------------------

func TestMakeHeaderIndex(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		checks map[string]int // key -> expected index
	}{
		{
			name:   "simple headers",
			header: []string{"state", "district", "pincode"},
			checks: map[string]int{"state": 0, "district": 1, "pincode": 2},
		},
		{
			name:   "case insensitive lookup",
			header: []string{"STATE", "District", "PinCode", "Age_0_5"},
			checks: map[string]int{"state": 0, "district": 1, "pincode": 2, "age_0_5": 3},
		},
		{
			name:   "headers with quotes and whitespace",
			header: []string{` "state" `, `  district`, `="pincode"`},
			checks: map[string]int{"state": 0, "district": 1, "pincode": 2},
		},
		{
			name:   "empty header",
			header: []string{},
			checks: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := MakeHeaderIndex(tt.header)
			if len(idx) != len(tt.checks) {
				t.Errorf("MakeHeaderIndex(%v) has %d keys, want %d", tt.header, len(idx), len(tt.checks))
			}
			for key, wantPos := range tt.checks {
				gotPos, ok := idx[key]
				if !ok {
					t.Errorf("MakeHeaderIndex(%v)[%q] not found, want index %d", tt.header, key, wantPos)
					continue
				}
				if gotPos != wantPos {
					t.Errorf("MakeHeaderIndex(%v)[%q] = %d, want %d", tt.header, key, gotPos, wantPos)
				}
			}
		})
	}
}

func TestIsEmptyRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{name: "nil row", row: nil, want: true},
		{name: "all blank", row: []string{"", "  ", "\t"}, want: true},
		{name: "one value", row: []string{"", "Cuttack", ""}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmptyRow(tt.row); got != tt.want {
				t.Errorf("IsEmptyRow(%q) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}
