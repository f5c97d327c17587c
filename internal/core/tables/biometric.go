package tables

import "github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"

func init() {
	registerBiometric()
}

// Biometric updates. The 17+ column is folded into the 18-45 bucket; the
// extract carries no finer split.
func registerBiometric() {
	core.Register(core.CategorySchema{
		Category: core.CategoryBiometric,
		Label:    "Biometric updates",
		Priority: 1,
		Markers: []core.Marker{
			{Kind: core.MatchContains, Token: "bio_age"},
		},
		Counts: []core.CountSpec{
			{Name: "bio_age_5_17", Bucket: core.Age5To18},
			{Name: "bio_age_17_", Bucket: core.Age18To45},
		},
	})
}
