package tables

import "github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"

func init() {
	registerDemographic()
}

func registerDemographic() {
	core.Register(core.CategorySchema{
		Category: core.CategoryDemographic,
		Label:    "Demographic updates",
		Priority: 2,
		Markers: []core.Marker{
			{Kind: core.MatchContains, Token: "demo_age"},
		},
		Counts: []core.CountSpec{
			{Name: "demo_age_5_17", Bucket: core.Age5To18},
			{Name: "demo_age_17_", Bucket: core.Age18To45},
		},
	})
}
