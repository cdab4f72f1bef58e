package risk

// ─── POINT TABLE ──────────────────────────────────────────────────────────────

// Level boundaries on the summed points.
const (
	crisisPoints = 12
	highPoints   = 8
	mediumPoints = 4
)

// band is one row of a factor's point table. Bands are ordered from most to
// least severe and only the first match is awarded.
type band struct {
	matches func(v float64) bool
	points  int
	detail  string
}

func atLeast(min float64) func(float64) bool { return func(v float64) bool { return v >= min } }
func atMost(max float64) func(float64) bool  { return func(v float64) bool { return v <= max } }

var (
	phq9Bands = []band{
		{atLeast(20), 6, "PHQ-9 severe (>=20)"},
		{atLeast(15), 5, "PHQ-9 moderately severe (15-19)"},
		{atLeast(10), 3, "PHQ-9 moderate (10-14)"},
		{atLeast(5), 1, "PHQ-9 mild (5-9)"},
	}
	gad7Bands = []band{
		{atLeast(15), 4, "GAD-7 severe (>=15)"},
		{atLeast(10), 2, "GAD-7 moderate (10-14)"},
		{atLeast(5), 1, "GAD-7 mild (5-9)"},
	}
	ghq12Bands = []band{
		{atLeast(8), 3, "GHQ-12 high distress (>=8)"},
		{atLeast(4), 1, "GHQ-12 possible distress (4-7)"},
	}
	moodBands = []band{
		{atMost(2), 3, "Low average mood (<=2)"},
		{atMost(3), 1, "Suboptimal average mood (<=3)"},
	}
	chatBands = []band{
		{atLeast(0.7), 3, "High negative chat ratio (>=0.7)"},
		{atLeast(0.4), 1, "Moderate negative chat ratio (>=0.4)"},
	}
	quizBands = []band{
		{atLeast(0.8), 3, "Quiz risk score very high (>=0.8)"},
		{atLeast(0.5), 1, "Quiz risk score moderate (>=0.5)"},
	}
)

var trendPoints = map[MoodTrend]struct {
	points int
	detail string
}{
	TrendDeclining: {2, "Mood trend declining"},
	TrendStable:    {1, "Mood trend stable"},
}

// Reason is one contributing factor of an Assessment, suitable for showing to
// a clinician.
type Reason struct {
	Factor string `json:"factor"`
	Points int    `json:"points"`
	Detail string `json:"detail"`
}

// Assessment is the explained outcome of the composite predictor.
type Assessment struct {
	Level    Level    `json:"level"`
	Points   int      `json:"points"`
	Override bool     `json:"override"`
	Reasons  []Reason `json:"reasons"`
}

// ─── PREDICTOR ────────────────────────────────────────────────────────────────

// Predict returns the composite risk level for pre-validated features.
// Behaviour for out-of-contract input (values outside the documented ranges,
// an unknown MoodTrend) is undefined; range violations must be rejected at
// the boundary with FeaturesInput.Features, never clamped here.
func Predict(f Features) Level {
	return Assess(f).Level
}

// Assess computes the point total and reasons, then applies the crisis
// override before the point mapping. Points and reasons are always filled
// in, including when the override decides the level.
func Assess(f Features) Assessment {
	var a Assessment

	award := func(factor string, bands []band, v float64) {
		for _, b := range bands {
			if b.matches(v) {
				a.Points += b.points
				a.Reasons = append(a.Reasons, Reason{Factor: factor, Points: b.points, Detail: b.detail})
				return
			}
		}
	}

	award("phq9", phq9Bands, f.PHQ9)
	award("gad7", gad7Bands, f.GAD7)
	award("ghq12", ghq12Bands, f.GHQ12)
	award("avgMood7Days", moodBands, f.AvgMood7Days)
	if t, ok := trendPoints[f.MoodTrend]; ok {
		a.Points += t.points
		a.Reasons = append(a.Reasons, Reason{Factor: "moodTrend", Points: t.points, Detail: t.detail})
	}
	award("negativeChatRatio", chatBands, f.NegativeChatRatio)
	award("quizRiskScore", quizBands, f.QuizRiskScore)

	if CrisisOverride(f) {
		a.Override = true
		a.Level = Crisis
		return a
	}

	a.Level = LevelForPoints(a.Points)
	return a
}

// CrisisOverride reports whether a very severe clinical score co-occurs with
// a very severe behavioural signal. When true the level is Crisis whatever
// the point total.
func CrisisOverride(f Features) bool {
	clinicalSevere := f.PHQ9 >= 20 || f.GAD7 >= 15 || f.GHQ12 >= 10
	behaviourSevere := (f.AvgMood7Days <= 2 && f.MoodTrend == TrendDeclining) ||
		f.NegativeChatRatio >= 0.85 ||
		f.QuizRiskScore >= 0.9
	return clinicalSevere && behaviourSevere
}

// LevelForPoints maps a point total onto the taxonomy:
// 0–3 low, 4–7 medium, 8–11 high, 12+ crisis.
func LevelForPoints(points int) Level {
	switch {
	case points >= crisisPoints:
		return Crisis
	case points >= highPoints:
		return High
	case points >= mediumPoints:
		return Medium
	default:
		return Low
	}
}
