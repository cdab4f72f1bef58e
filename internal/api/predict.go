package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// ─── POST /api/predict ───────────────────────────────────────────────────────
//
// Validates a feature vector and returns the composite risk level. Every
// field is required and range-checked here; the predictor itself never
// clamps. The rule predictor always runs before any model is consulted.

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var in risk.FeaturesInput
	if !decode(w, r, &in) {
		return
	}

	f, err := in.Features()
	if err != nil {
		var verr *risk.ValidationError
		if errors.As(err, &verr) {
			respond(w, http.StatusBadRequest, errorResponse{
				Error:  "invalid feature payload",
				Issues: verr.Issues,
			})
			return
		}
		s.respondInternalErr(w, r, err)
		return
	}

	p, err := s.classifier.Classify(r.Context(), f)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("classify: %w", err))
		return
	}

	s.metrics.ObservePrediction(p.Level, string(p.Source))
	if p.Level == risk.Crisis {
		s.logger.Warn("predict: crisis level",
			"source", p.Source,
			logField(r),
		)
	}

	respond(w, http.StatusOK, p.Response(s.now()))
}
