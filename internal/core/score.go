package core

import "math"

// Readiness score weights. The anomaly term is a fixed placeholder because
// the extracts carry no failure-rate signal.
const (
	enrolmentWeight    = 0.4
	biometricWeight    = 0.4
	anomalyWeight      = 0.2
	anomalyPlaceholder = 100.0
)

// ScoreDistricts computes a readiness score for every recorded district and
// stores them in s.DistrictScores, highest first. Ties keep the order the
// districts were first recorded. With no districts it does nothing.
func ScoreDistricts(s *Summary) {
	if s.districtTotals.Len() == 0 {
		return
	}

	var maxEnrol, maxBio int64
	s.districtTotals.Each(func(_ string, t CategoryTotals) {
		maxEnrol = max(maxEnrol, t.Enrolment)
		maxBio = max(maxBio, t.Biometric)
	})
	if maxEnrol == 0 {
		maxEnrol = 1
	}
	if maxBio == 0 {
		maxBio = 1
	}

	scores := NewOrderedMap[Score]()
	s.districtTotals.Each(func(district string, t CategoryTotals) {
		scores.Set(district, ReadinessScore(t, maxEnrol, maxBio))
	})
	scores.SortStable(func(a, b Score) bool { return a > b })

	s.DistrictScores = scores
}

// ReadinessScore blends a district's enrolment and biometric volume relative
// to the busiest district. The result is rounded to one decimal.
func ReadinessScore(t CategoryTotals, maxEnrol, maxBio int64) Score {
	enrolScore := float64(t.Enrolment) / float64(maxEnrol) * 100
	bioScore := float64(t.Biometric) / float64(maxBio) * 100
	score := enrolScore*enrolmentWeight + bioScore*biometricWeight + anomalyPlaceholder*anomalyWeight
	return Score(math.Round(score*10) / 10)
}
