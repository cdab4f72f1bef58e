package scoring

import (
	"errors"

	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
)

// ErrNoAnswers is returned for a submission whose answers field is missing
// or null. An empty list is valid and scores zero.
var ErrNoAnswers = errors.New("invalid payload: expected { answers: [{id, value}] }")

// Submission is the wire form of one instrument submission, shared by the
// HTTP, gRPC and CLI front ends.
type Submission struct {
	Answers []instrument.Answer `json:"answers"`
}

// Score scores s against def.
func (s Submission) Score(def instrument.Definition) (Result, error) {
	if s.Answers == nil {
		return Result{}, ErrNoAnswers
	}
	return Score(def, s.Answers), nil
}

// CheckInSummary is the response body for the check-in.
type CheckInSummary struct {
	Score     float64 `json:"score"`
	RiskLevel string  `json:"riskLevel"`
}

// WellbeingSummary is the response body for the wellbeing instrument.
type WellbeingSummary struct {
	TotalScore       float64            `json:"totalScore"`
	RiskLevel        string             `json:"riskLevel"`
	SectionBreakdown map[string]float64 `json:"sectionBreakdown"`
	CrisisFlag       bool               `json:"crisisFlag"`
}

// CheckInSummary renders r with def's band labels.
func (r Result) CheckInSummary(def instrument.Definition) CheckInSummary {
	return CheckInSummary{Score: r.TotalScore, RiskLevel: r.LevelLabel(def)}
}

// WellbeingSummary renders r with def's band labels.
func (r Result) WellbeingSummary(def instrument.Definition) WellbeingSummary {
	return WellbeingSummary{
		TotalScore:       r.TotalScore,
		RiskLevel:        r.LevelLabel(def),
		SectionBreakdown: r.Sections,
		CrisisFlag:       r.CrisisFlag,
	}
}
