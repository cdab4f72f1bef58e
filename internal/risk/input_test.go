package risk_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

func decodeInput(t *testing.T, body string) risk.FeaturesInput {
	t.Helper()
	var in risk.FeaturesInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return in
}

func TestFeaturesInput_Valid(t *testing.T) {
	in := decodeInput(t, `{
		"phq9": 0, "gad7": 21, "ghq12": 12, "avgMood7Days": 1,
		"moodTrend": "declining", "negativeChatRatio": 1, "quizRiskScore": 0
	}`)

	f, err := in.Features()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := risk.Features{GAD7: 21, GHQ12: 12, AvgMood7Days: 1, MoodTrend: risk.TrendDeclining, NegativeChatRatio: 1}
	if f != want {
		t.Errorf("got %+v, want %+v", f, want)
	}
}

func TestFeaturesInput_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPaths []string
	}{
		{"missing everything", `{}`, []string{
			"phq9", "gad7", "ghq12", "avgMood7Days", "moodTrend", "negativeChatRatio", "quizRiskScore",
		}},
		{"phq9 too high", `{
			"phq9": 28, "gad7": 0, "ghq12": 0, "avgMood7Days": 3,
			"moodTrend": "stable", "negativeChatRatio": 0, "quizRiskScore": 0
		}`, []string{"phq9"}},
		{"mood below scale and unknown trend", `{
			"phq9": 1, "gad7": 0, "ghq12": 0, "avgMood7Days": 0.5,
			"moodTrend": "sideways", "negativeChatRatio": 0, "quizRiskScore": 0
		}`, []string{"avgMood7Days", "moodTrend"}},
		{"ratios above one", `{
			"phq9": 1, "gad7": 0, "ghq12": 0, "avgMood7Days": 3,
			"moodTrend": "stable", "negativeChatRatio": 1.01, "quizRiskScore": 2
		}`, []string{"negativeChatRatio", "quizRiskScore"}},
		{"negative gad7 and ghq12 over scale", `{
			"phq9": 1, "gad7": -1, "ghq12": 13, "avgMood7Days": 3,
			"moodTrend": "stable", "negativeChatRatio": 0, "quizRiskScore": 0
		}`, []string{"gad7", "ghq12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeInput(t, tt.body).Features()
			var verr *risk.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(verr.Issues) != len(tt.wantPaths) {
				t.Fatalf("got %d issues %+v, want paths %v", len(verr.Issues), verr.Issues, tt.wantPaths)
			}
			for i, p := range tt.wantPaths {
				if verr.Issues[i].Path != p {
					t.Errorf("issue[%d].Path = %q, want %q", i, verr.Issues[i].Path, p)
				}
				if verr.Issues[i].Message == "" {
					t.Errorf("issue[%d] has empty message", i)
				}
			}
		})
	}
}
