package core

import "strconv"

// GenderCounts is reserved: no input column maps to gender yet.
type GenderCounts struct {
	Male   int64 `json:"Male"`
	Female int64 `json:"Female"`
	Other  int64 `json:"Other"`
}

// AgeCounts is the fixed age-bucket histogram.
type AgeCounts struct {
	Age0To5   int64 `json:"0-5"`
	Age5To18  int64 `json:"5-18"`
	Age18To45 int64 `json:"18-45"`
	Age45To60 int64 `json:"45-60"`
	Age60Plus int64 `json:"60+"`
}

// Get returns the count for a bucket.
func (a AgeCounts) Get(b AgeBucket) int64 {
	switch b {
	case Age0To5:
		return a.Age0To5
	case Age5To18:
		return a.Age5To18
	case Age18To45:
		return a.Age18To45
	case Age45To60:
		return a.Age45To60
	case Age60Plus:
		return a.Age60Plus
	default:
		return 0
	}
}

func (a *AgeCounts) add(b AgeBucket, n int64) {
	switch b {
	case Age0To5:
		a.Age0To5 += n
	case Age5To18:
		a.Age5To18 += n
	case Age18To45:
		a.Age18To45 += n
	case Age45To60:
		a.Age45To60 += n
	case Age60Plus:
		a.Age60Plus += n
	}
}

func (a *AgeCounts) merge(o AgeCounts) {
	a.Age0To5 += o.Age0To5
	a.Age5To18 += o.Age5To18
	a.Age18To45 += o.Age18To45
	a.Age45To60 += o.Age45To60
	a.Age60Plus += o.Age60Plus
}

// Score is a readiness score, rendered with exactly one decimal place.
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(s), 'f', 1, 64)), nil
}

// Trends is reserved for time-series analysis and is always empty.
type Trends struct {
	Weekly     map[string]int64   `json:"weekly"`
	GrowthRate map[string]float64 `json:"growth_rate"`
	Anomalies  []string           `json:"anomalies"`
}

// Insights is the narrative block derived from the final totals.
type Insights struct {
	ExecutiveSummary string                 `json:"executive_summary"`
	KeyFindings      []string               `json:"key_findings"`
	DistrictInsights *OrderedMap[string]    `json:"district_insights"`
	CrossDataset     map[string]interface{} `json:"cross_dataset"`
	Recommendations  []string               `json:"recommendations"`
}

func newInsights() Insights {
	return Insights{
		KeyFindings:      []string{},
		DistrictInsights: NewOrderedMap[string](),
		CrossDataset:     map[string]interface{}{},
		Recommendations:  []string{},
	}
}

// Summary accumulates every applied file's contribution for one run.
// Numeric fields only ever grow; nothing is reset mid-run.
type Summary struct {
	Validation         *ValidationReport               `json:"validation"`
	TotalEnrolments    int64                           `json:"totalEnrolments"`
	TotalUpdates       int64                           `json:"totalUpdates"`
	BiometricUpdates   int64                           `json:"biometricUpdates"`
	DemographicUpdates int64                           `json:"demographicUpdates"`
	GenderCounts       GenderCounts                    `json:"genderCounts"`
	AgeCounts          AgeCounts                       `json:"ageCounts"`
	StateCounts        *OrderedMap[int64]              `json:"stateCounts"`
	DistrictCounts     *OrderedMap[*OrderedMap[int64]] `json:"districtCounts"`
	DistrictScores     *OrderedMap[Score]              `json:"district_scores"`
	Trends             Trends                          `json:"trends"`
	Insights           Insights                        `json:"insights"`

	// Per-district category totals feeding the readiness scorer. Keyed by
	// district name alone.
	districtTotals *OrderedMap[CategoryTotals]
}

// NewSummary returns an empty accumulator for one run.
func NewSummary() *Summary {
	return &Summary{
		Validation:     NewValidationReport(),
		StateCounts:    NewOrderedMap[int64](),
		DistrictCounts: NewOrderedMap[*OrderedMap[int64]](),
		DistrictScores: NewOrderedMap[Score](),
		Trends: Trends{
			Weekly:     map[string]int64{},
			GrowthRate: map[string]float64{},
			Anomalies:  []string{},
		},
		Insights:       newInsights(),
		districtTotals: NewOrderedMap[CategoryTotals](),
	}
}

// TotalAuthentications is biometric plus demographic updates.
func (s *Summary) TotalAuthentications() int64 {
	return s.BiometricUpdates + s.DemographicUpdates
}

// DistrictTotals returns the category totals recorded for a district.
func (s *Summary) DistrictTotals(district string) (CategoryTotals, bool) {
	return s.districtTotals.Get(district)
}

// Districts returns district names in the order they were first recorded.
func (s *Summary) Districts() []string {
	return s.districtTotals.Keys()
}
