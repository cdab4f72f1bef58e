package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// execute runs riskctl with args and stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuestionnaire(t *testing.T) {
	in := `{"answers":[{"id":"q1","value":1},{"id":"q2","value":1},{"id":"q3","value":1},{"id":"q4","value":1},
		{"id":"q5","value":1},{"id":"q6","value":1},{"id":"q7","value":1},{"id":"q8","value":1}]}`
	out, err := execute(t, in, "questionnaire")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := map[string]any{"score": 0.364, "riskLevel": "medium"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWellbeing_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(`{"answers":[{"id":"safety_01","value":2}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "wellbeing", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		RiskLevel  string `json:"riskLevel"`
		CrisisFlag bool   `json:"crisisFlag"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.RiskLevel != "low" || !got.CrisisFlag {
		t.Errorf("got %+v, want low with crisis flag", got)
	}
}

func TestQuestionnaire_RejectsMissingAnswers(t *testing.T) {
	if _, err := execute(t, `{}`, "questionnaire"); err == nil {
		t.Fatal("expected error for missing answers")
	}
}

func TestPredict(t *testing.T) {
	in := `{"phq9":12,"gad7":6,"ghq12":3,"avgMood7Days":3,"moodTrend":"stable","negativeChatRatio":0.2,"quizRiskScore":0.4}`
	out, err := execute(t, in, "predict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Level    string `json:"level"`
		Points   int    `json:"points"`
		Override bool   `json:"override"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Level != "medium" || got.Points != 6 || got.Override {
		t.Errorf("got %+v, want medium/6/no override", got)
	}
}

func TestPredict_ValidationError(t *testing.T) {
	_, err := execute(t, `{"phq9":40}`, "predict")
	if err == nil || !strings.Contains(err.Error(), "phq9") {
		t.Fatalf("expected validation error naming phq9, got %v", err)
	}
}

func TestChat(t *testing.T) {
	out, err := execute(t, "", "chat", "I feel so hopeless")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"severity":"high"`) {
		t.Errorf("unexpected output: %s", out)
	}

	out, err = execute(t, "hello there\n\nI want to end it all\n", "chat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], `"low"`) || !strings.Contains(lines[1], `"crisis"`) {
		t.Errorf("unexpected severities: %q", lines)
	}
}

func TestInstrument(t *testing.T) {
	out, err := execute(t, "", "instrument", "wellbeing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"safety_01"`) {
		t.Errorf("definition missing safety item: %s", out)
	}

	if _, err := execute(t, "", "instrument", "phq9"); err == nil {
		t.Error("expected error for unknown instrument")
	}
}
