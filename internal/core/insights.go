package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	lowBiometricRatio   = 0.4
	highBiometricRatio  = 0.8
	childEnrolmentShare = 0.1

	// Only the first districts recorded are checked for missing biometric
	// activity; this is not a ranked subset.
	connectivityScanLimit = 5
)

// Keys of Insights.DistrictInsights.
const (
	InsightTopPerformer    = "top_performer"
	InsightAttentionNeeded = "attention_needed"
)

// GenerateInsights derives the narrative block from the final Summary.
// It reads s without modifying it; ScoreDistricts must already have run.
func GenerateInsights(s *Summary) Insights {
	p := message.NewPrinter(language.English)
	out := newInsights()

	auths := s.TotalAuthentications()
	bioShare := 0.0
	if auths > 0 {
		bioShare = float64(s.BiometricUpdates) / float64(auths) * 100
	}
	out.ExecutiveSummary = p.Sprintf(
		"Processed %d enrolments and %d authentications (biometric and demographic updates); biometric updates account for %.1f%% of authentications.",
		s.TotalEnrolments, auths, bioShare)

	if auths > 0 {
		ratio := float64(s.BiometricUpdates) / float64(auths)
		switch {
		case ratio < lowBiometricRatio:
			out.KeyFindings = append(out.KeyFindings, p.Sprintf(
				"Low biometric usage: biometric updates are only %.1f%% of authentications, below the %.0f%% threshold.",
				ratio*100, lowBiometricRatio*100))
		case ratio > highBiometricRatio:
			out.KeyFindings = append(out.KeyFindings, p.Sprintf(
				"High biometric dependency: biometric updates are %.1f%% of authentications, above the %.0f%% threshold.",
				ratio*100, highBiometricRatio*100))
		}
	}

	if keys := s.DistrictScores.Keys(); len(keys) > 0 {
		top, bottom := keys[0], keys[len(keys)-1]
		topScore, _ := s.DistrictScores.Get(top)
		bottomScore, _ := s.DistrictScores.Get(bottom)
		out.DistrictInsights.Set(InsightTopPerformer, p.Sprintf(
			"%s is the top performer with a readiness score of %.1f.", top, float64(topScore)))
		out.DistrictInsights.Set(InsightAttentionNeeded, p.Sprintf(
			"%s needs attention with the lowest readiness score of %.1f.", bottom, float64(bottomScore)))
	}

	if float64(s.AgeCounts.Age0To5) < float64(s.TotalEnrolments)*childEnrolmentShare {
		out.Recommendations = append(out.Recommendations, p.Sprintf(
			"Children aged 0-5 make up only %.1f%% of enrolments; expand child enrolment outreach through anganwadi centres and birth registration camps.",
			float64(s.AgeCounts.Age0To5)/float64(s.TotalEnrolments)*100))
	}

	districts := s.Districts()
	if len(districts) > connectivityScanLimit {
		districts = districts[:connectivityScanLimit]
	}
	for _, district := range districts {
		totals, _ := s.DistrictTotals(district)
		if totals.Enrolment > 0 && totals.Biometric == 0 {
			out.Recommendations = append(out.Recommendations, p.Sprintf(
				"Verify biometric device connectivity in %s: %d enrolments recorded but no biometric updates.",
				district, totals.Enrolment))
		}
	}

	return out
}
