// Package inference decides the risk level served by the predict endpoint.
// The rule-based predictor is always available; an external model inference
// service can be layered on top of it, but the rules always run first and
// are the only way to reach crisis.
package inference

import (
	"context"
	"time"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// Source names where a Prediction came from.
type Source string

const (
	SourceRules        Source = "rules"
	SourceRuleOverride Source = "rule_override"
	SourceModel        Source = "model"
	// SourceModelCapped marks a model crisis the rules did not confirm,
	// reported as High.
	SourceModelCapped  Source = "model_capped"
	SourceRuleFallback Source = "rule_fallback"
)

// Prediction is the outcome of one classification.
type Prediction struct {
	Level      risk.Level
	Confidence float64
	Source     Source
	// Assessment is the rule-based explanation. It is filled in whenever the
	// rules ran, which is always except for a pure model result.
	Assessment *risk.Assessment
}

// Classifier is the interface the HTTP and gRPC layers use to classify
// validated features. Implementations must be safe to call concurrently.
// A non-nil error means no level could be produced.
type Classifier interface {
	Classify(ctx context.Context, f risk.Features) (Prediction, error)
}

// Rules is the Classifier backed by the composite point predictor. It never
// fails.
type Rules struct{}

// Classify implements Classifier.
func (Rules) Classify(_ context.Context, f risk.Features) (Prediction, error) {
	a := risk.Assess(f)
	src := SourceRules
	if a.Override {
		src = SourceRuleOverride
	}
	return Prediction{Level: a.Level, Confidence: 1, Source: src, Assessment: &a}, nil
}

// Response is the wire form of a Prediction, shared by the HTTP, gRPC and
// CLI front ends.
type Response struct {
	Risk       risk.Level `json:"risk"`
	Timestamp  time.Time  `json:"timestamp"`
	Source     Source     `json:"source"`
	Confidence float64    `json:"confidence"`
	// Points and Reasons are present whenever the rule predictor ran.
	Points  *int          `json:"points,omitempty"`
	Reasons []risk.Reason `json:"reasons,omitempty"`
}

// Response renders p as issued at the given time.
func (p Prediction) Response(at time.Time) Response {
	resp := Response{
		Risk:       p.Level,
		Timestamp:  at.UTC(),
		Source:     p.Source,
		Confidence: p.Confidence,
	}
	if p.Assessment != nil {
		points := p.Assessment.Points
		resp.Points = &points
		resp.Reasons = p.Assessment.Reasons
	}
	return resp
}
