// Package chat classifies free-text chat messages into the shared risk
// taxonomy and picks supportive canned replies.
package chat

import (
	"strings"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// tier is one keyword set of the detector. Tiers are checked in order and the
// first tier with any matching keyword decides the severity.
type tier struct {
	level    risk.Level
	keywords []string
}

// severityTiers is matched by plain substring: no stemming and no negation
// handling, so "I would never hurt myself" still reads as crisis.
var severityTiers = []tier{
	{risk.Crisis, []string{
		"suicide",
		"kill myself",
		"end it all",
		"hurt myself",
		"self harm",
		"want to die",
		"no point living",
		"better off dead",
	}},
	{risk.High, []string{"panic", "can't cope", "overwhelming", "hopeless", "desperate"}},
	{risk.Medium, []string{"anxious", "depressed", "stressed", "worried", "sad", "angry"}},
}

// DetectSeverity returns the severity tier of a single message. Messages
// matching no keyword are Low.
func DetectSeverity(message string) risk.Level {
	lower := strings.ToLower(message)
	for _, t := range severityTiers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.level
			}
		}
	}
	return risk.Low
}
