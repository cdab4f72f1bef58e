package risk

// MoodTrend is the direction of the student's mood over the last week.
type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendStable    MoodTrend = "stable"
	TrendDeclining MoodTrend = "declining"
)

// Features is the fixed-shape signal vector consumed by the composite
// predictor. Every field is required and must already be range-checked by
// the caller (see FeaturesInput); Predict and Assess never clamp.
//
//	PHQ9               0–27
//	GAD7               0–21
//	GHQ12              0–12 (bimodal scoring)
//	AvgMood7Days       1–5  (1 = bad, 5 = great)
//	NegativeChatRatio  0–1
//	QuizRiskScore      0–1  (typically an instrument TotalScore)
type Features struct {
	PHQ9              float64   `json:"phq9"`
	GAD7              float64   `json:"gad7"`
	GHQ12             float64   `json:"ghq12"`
	AvgMood7Days      float64   `json:"avgMood7Days"`
	MoodTrend         MoodTrend `json:"moodTrend"`
	NegativeChatRatio float64   `json:"negativeChatRatio"`
	QuizRiskScore     float64   `json:"quizRiskScore"`
}
