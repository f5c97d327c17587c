package core

import "testing"

// Schemas mirroring the production registrations in core/tables.
var (
	testEnrolment = CategorySchema{
		Category: CategoryEnrolment,
		Label:    "Enrolment",
		Priority: 3,
		Markers:  []Marker{{Kind: MatchExact, Token: "age_0_5"}},
		Counts: []CountSpec{
			{Name: "age_0_5", Bucket: Age0To5},
			{Name: "age_5_17", Bucket: Age5To18},
			{Name: "age_18_greater", Bucket: Age18To45},
		},
	}
	testBiometric = CategorySchema{
		Category: CategoryBiometric,
		Label:    "Biometric updates",
		Priority: 1,
		Markers:  []Marker{{Kind: MatchContains, Token: "bio_age"}},
		Counts: []CountSpec{
			{Name: "bio_age_5_17", Bucket: Age5To18},
			{Name: "bio_age_17_", Bucket: Age18To45},
		},
	}
	testDemographic = CategorySchema{
		Category: CategoryDemographic,
		Label:    "Demographic updates",
		Priority: 2,
		Markers:  []Marker{{Kind: MatchContains, Token: "demo_age"}},
		Counts: []CountSpec{
			{Name: "demo_age_5_17", Bucket: Age5To18},
			{Name: "demo_age_17_", Bucket: Age18To45},
		},
	}
)

// withTestRegistry registers the three test schemas for the duration of a test.
func withTestRegistry(t testing.TB) {
	t.Helper()
	Clear()
	Register(testEnrolment)
	Register(testBiometric)
	Register(testDemographic)
	t.Cleanup(Clear)
}

func enrolmentTable(source string, rows ...[]string) Table {
	return Table{
		Source: source,
		Header: []string{"state", "district", "pincode", "age_0_5", "age_5_17", "age_18_greater"},
		Rows:   rows,
	}
}

func biometricTable(source string, rows ...[]string) Table {
	return Table{
		Source: source,
		Header: []string{"state", "district", "pincode", "bio_age_5_17", "bio_age_17_"},
		Rows:   rows,
	}
}

func demographicTable(source string, rows ...[]string) Table {
	return Table{
		Source: source,
		Header: []string{"state", "district", "pincode", "demo_age_5_17", "demo_age_17_"},
		Rows:   rows,
	}
}

var testAliases = map[string]string{
	"orissa":      "Odisha",
	"pondicherry": "Puducherry",
}
