package inference

import (
	"context"
	"log/slog"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// fallbackConfidence is reported when the rules stand in for a failed model.
const fallbackConfidence = 0.5

// guarded wraps a primary Classifier (normally the model service) with the
// rule predictor. Crisis is only ever reported when the rules reach it, by
// the point threshold or the override.
type guarded struct {
	primary Classifier
	logger  *slog.Logger
}

// NewGuarded returns a Classifier that runs the rule predictor before
// consulting primary:
//   - a rule Crisis (points or override) is returned as is; primary is not called
//   - a primary Crisis the rules do not confirm is capped at High
//   - a primary error falls back to the rule result
//
// A nil primary yields the plain Rules classifier.
func NewGuarded(primary Classifier, logger *slog.Logger) Classifier {
	if primary == nil {
		return Rules{}
	}
	return &guarded{primary: primary, logger: logger}
}

// Classify implements Classifier.
func (g *guarded) Classify(ctx context.Context, f risk.Features) (Prediction, error) {
	rules, _ := Rules{}.Classify(ctx, f)
	if rules.Level == risk.Crisis {
		return rules, nil
	}

	p, err := g.primary.Classify(ctx, f)
	if err != nil {
		g.logger.Warn("inference: primary classifier failed, using rules",
			"error", err,
		)
		rules.Confidence = fallbackConfidence
		rules.Source = SourceRuleFallback
		return rules, nil
	}

	if p.Level == risk.Crisis {
		g.logger.Warn("inference: model crisis not confirmed by rules, capping at high",
			"rule_level", rules.Level,
			"rule_points", rules.Assessment.Points,
		)
		p.Level = risk.High
		p.Source = SourceModelCapped
		p.Assessment = rules.Assessment
	}
	return p, nil
}
