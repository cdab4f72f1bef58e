package scoring

import "github.com/nyashahama/wellbeing-risk-engine/internal/risk"

// Band thresholds on a normalized [0,1] instrument score. Every instrument
// shares them so the check-in and the wellbeing instrument never drift apart.
const (
	MediumThreshold = 0.34 // score >= 0.34 → medium ("moderate")
	HighThreshold   = 0.67 // score >= 0.67 → high
)

// SafetyCriticalThreshold is the raw answer value on a 0..3 scale at or above
// which a safety-critical question raises the crisis flag.
const SafetyCriticalThreshold = 2

// BandFor maps a normalized score onto low/medium/high. It never returns
// risk.Crisis; instruments escalate through CrisisFlag instead.
func BandFor(score float64) risk.Level {
	switch {
	case score >= HighThreshold:
		return risk.High
	case score >= MediumThreshold:
		return risk.Medium
	default:
		return risk.Low
	}
}
