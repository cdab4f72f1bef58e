package instrument

import "fmt"

// Instrument ids as exposed on the API.
const (
	IDCheckIn   = "checkin"
	IDWellbeing = "wellbeing"
)

// frequencyScale is the answer scale of the check-in.
var frequencyScale = []Option{
	{Label: "Never", Value: 0},
	{Label: "Sometimes", Value: 1},
	{Label: "Often", Value: 2},
	{Label: "Almost always", Value: 3},
}

// daysScale is the answer scale of the wellbeing instrument.
var daysScale = []Option{
	{Label: "Not at all", Value: 0},
	{Label: "Several days", Value: 1},
	{Label: "More than half the days", Value: 2},
	{Label: "Nearly every day", Value: 3},
}

// CheckInV1 is the 8-item check-in. q8 is positively phrased and
// reverse-scored.
var CheckInV1 = Definition{
	ID:          IDCheckIn,
	Version:     "v1",
	Title:       "Weekly check-in",
	MediumLabel: "medium",
	Options:     frequencyScale,
	Questions: []Question{
		{ID: "q1", Text: "How often have you felt unmotivated to do things you usually enjoy?", Category: "motivation", Weight: 1.2, MaxValue: 3},
		{ID: "q2", Text: "How often have you felt emotionally drained during the day?", Category: "mood", Weight: 1.3, MaxValue: 3},
		{ID: "q3", Text: "How often do you feel overwhelmed by your responsibilities?", Category: "stress", Weight: 1.2, MaxValue: 3},
		{ID: "q4", Text: "How often do you find it difficult to relax, even during free time?", Category: "stress", Weight: 1.1, MaxValue: 3},
		{ID: "q5", Text: "How often do you wake up feeling tired or unrested?", Category: "sleep", Weight: 1.0, MaxValue: 3},
		{ID: "q6", Text: "How often do you find it hard to focus on your studies or tasks?", Category: "motivation", Weight: 1.1, MaxValue: 3},
		{ID: "q7", Text: "How often do you feel disconnected from people around you?", Category: "social", Weight: 1.0, MaxValue: 3},
		{ID: "q8", Text: "How often do you feel confident handling everyday challenges?", Category: "mood", Weight: 0.8, MaxValue: 3, Reverse: true},
	},
}

// WellbeingV1 is the sectioned wellbeing check-in. safety_01 is
// safety-critical.
var WellbeingV1 = Definition{
	ID:          IDWellbeing,
	Version:     "v1",
	Title:       "Wellbeing check-in",
	MediumLabel: "moderate",
	Options:     daysScale,
	Questions: []Question{
		// Mood & energy
		{ID: "safety_01", Text: "Have you had thoughts that you would be better off not being here?", Section: SectionMood, Weight: 1.2, MaxValue: 3, SafetyCritical: true},
		{ID: "mood_01", Text: "Have you felt down or low in spirits?", Section: SectionMood, Weight: 1.2, MaxValue: 3},
		{ID: "mood_02", Text: "Have you had less interest in activities you usually enjoy?", Section: SectionMood, Weight: 1.2, MaxValue: 3},
		{ID: "mood_03", Text: "Have your energy levels felt lower than usual?", Section: SectionMood, Weight: 1.0, MaxValue: 3},
		{ID: "mood_04", Text: "Have you found it hard to feel hopeful about things?", Section: SectionMood, Weight: 1.0, MaxValue: 3},
		{ID: "mood_05", Text: "Have you felt more easily irritated or frustrated?", Section: SectionMood, Weight: 1.0, MaxValue: 3},
		{ID: "mood_06", Text: "Have you felt disconnected from people or activities?", Section: SectionMood, Weight: 1.0, MaxValue: 3},

		// Stress & worry
		{ID: "stress_01", Text: "Have you felt nervous or on edge?", Section: SectionStress, Weight: 1.2, MaxValue: 3},
		{ID: "stress_02", Text: "Have you found yourself worrying more than you can control?", Section: SectionStress, Weight: 1.2, MaxValue: 3},
		{ID: "stress_03", Text: "Have you felt restless or struggled to relax?", Section: SectionStress, Weight: 1.0, MaxValue: 3},
		{ID: "stress_04", Text: "Have you felt overly tense in your body (e.g., tightness, knots)?", Section: SectionStress, Weight: 1.0, MaxValue: 3},
		{ID: "stress_05", Text: "Have worries made it hard to focus on what you're doing?", Section: SectionStress, Weight: 1.0, MaxValue: 3},
		{ID: "stress_06", Text: "Have you felt overwhelmed by responsibilities or expectations?", Section: SectionStress, Weight: 1.0, MaxValue: 3},

		// Daily functioning
		{ID: "func_01", Text: "Have you found it hard to start or finish everyday tasks?", Section: SectionFunctioning, Weight: 1.2, MaxValue: 3},
		{ID: "func_02", Text: "Have your sleep patterns been disrupted (too little or too much)?", Section: SectionFunctioning, Weight: 1.0, MaxValue: 3},
		{ID: "func_03", Text: "Have you had difficulty concentrating on studies or work?", Section: SectionFunctioning, Weight: 1.2, MaxValue: 3},
		{ID: "func_04", Text: "Have changes in appetite affected your day-to-day wellbeing?", Section: SectionFunctioning, Weight: 1.0, MaxValue: 3},
		{ID: "func_05", Text: "Have you felt less able to connect with friends, family, or peers?", Section: SectionFunctioning, Weight: 1.0, MaxValue: 3},
		{ID: "func_06", Text: "Have you avoided tasks or social activities more than usual?", Section: SectionFunctioning, Weight: 1.0, MaxValue: 3},
		{ID: "func_07", Text: "Have you felt less confident managing daily responsibilities?", Section: SectionFunctioning, Weight: 1.0, MaxValue: 3},
	},
}

var registry = map[string]Definition{
	IDCheckIn:   CheckInV1,
	IDWellbeing: WellbeingV1,
}

// Lookup returns the current definition for an instrument id.
func Lookup(id string) (Definition, bool) {
	d, ok := registry[id]
	return d, ok
}

// ValidateAll validates every registered definition. The server calls it at
// startup and refuses to start on error.
func ValidateAll() error {
	for id, d := range registry {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("registry %q: %w", id, err)
		}
	}
	return nil
}
