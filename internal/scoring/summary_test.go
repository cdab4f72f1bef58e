package scoring_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/scoring"
)

func TestSubmission_Score(t *testing.T) {
	var s scoring.Submission
	if _, err := s.Score(instrument.CheckInV1); !errors.Is(err, scoring.ErrNoAnswers) {
		t.Errorf("nil answers: err = %v, want ErrNoAnswers", err)
	}

	if err := json.Unmarshal([]byte(`{"answers":[]}`), &s); err != nil {
		t.Fatal(err)
	}
	res, err := s.Score(instrument.CheckInV1)
	if err != nil {
		t.Fatalf("empty answers: unexpected error: %v", err)
	}
	// q8 is reverse-scored, so an empty check-in is not zero.
	if res.TotalScore != 0.0920 {
		t.Errorf("empty check-in score = %v, want 0.092", res.TotalScore)
	}
}

func TestSummaries_WireShape(t *testing.T) {
	s := scoring.Submission{Answers: []instrument.Answer{{ID: "safety_01", Value: 2}}}
	res, err := s.Score(instrument.WellbeingV1)
	if err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(res.WellbeingSummary(instrument.WellbeingV1))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"totalScore": 0.0374,
		"riskLevel":  "low",
		"sectionBreakdown": map[string]any{
			"mood": 0.1053, "stress": 0.0, "functioning": 0.0,
		},
		"crisisFlag": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wellbeing summary mismatch (-want +got):\n%s", diff)
	}

	medium := scoring.Result{TotalScore: 0.5}
	medium.Level = scoring.BandFor(medium.TotalScore)
	if got := medium.CheckInSummary(instrument.CheckInV1); got != (scoring.CheckInSummary{Score: 0.5, RiskLevel: "medium"}) {
		t.Errorf("check-in summary = %+v", got)
	}
	if got := medium.WellbeingSummary(instrument.WellbeingV1).RiskLevel; got != "moderate" {
		t.Errorf("wellbeing medium label = %q, want moderate", got)
	}
}
