package tables

import "github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"

func init() {
	registerEnrolment()
}

// New Aadhaar enrolments by age band.
func registerEnrolment() {
	core.Register(core.CategorySchema{
		Category: core.CategoryEnrolment,
		Label:    "Enrolment",
		Priority: 3,
		Markers: []core.Marker{
			{Kind: core.MatchExact, Token: "age_0_5"},
		},
		Counts: []core.CountSpec{
			{Name: "age_0_5", Bucket: core.Age0To5},
			{Name: "age_5_17", Bucket: core.Age5To18},
			{Name: "age_18_greater", Bucket: core.Age18To45},
		},
	})
}
