package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nyashahama/wellbeing-risk-engine/internal/metrics"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counts(t *testing.T) {
	r := metrics.New()
	r.ObserveAssessment("wellbeing", risk.Low, true)
	r.ObserveAssessment("wellbeing", risk.High, false)
	r.ObservePrediction(risk.Crisis, "rule_override")
	r.ObserveChat(risk.Medium)
	r.ObserveChat(risk.Medium)

	n, err := testutil.GatherAndCount(r.Registry(),
		"riskengine_instrument_assessments_total",
		"riskengine_instrument_crisis_flags_total",
		"riskengine_predictions_total",
		"riskengine_chat_messages_total",
	)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	// two assessment series, one crisis flag, one prediction, one chat series
	if n != 5 {
		t.Errorf("got %d series, want 5", n)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		`riskengine_chat_messages_total{severity="medium"} 2`,
		`riskengine_instrument_crisis_flags_total{instrument="wellbeing"} 1`,
		`riskengine_predictions_total{level="crisis",source="rule_override"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	r.ObserveAssessment("checkin", risk.Low, true)
	r.ObservePrediction(risk.Low, "rules")
	r.ObserveChat(risk.Low)
	if r.Registry() != nil {
		t.Error("nil recorder should have no registry")
	}
}
