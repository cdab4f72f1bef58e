package api

import (
	"errors"
	"net/http"

	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/scoring"
)

// ─── POST /api/questionnaire/submit, POST /api/wellbeing/submit ──────────────
//
// Both instruments share one scorer. Answers outside the 0..MaxValue scale
// are clamped and unanswered items count as zero, so the only client error
// is a body whose answers field is not an array.

func (s *Server) handleSubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	def := instrument.CheckInV1
	res, ok := s.scoreSubmission(w, r, def)
	if !ok {
		return
	}
	respond(w, http.StatusOK, res.CheckInSummary(def))
}

func (s *Server) handleSubmitWellbeing(w http.ResponseWriter, r *http.Request) {
	def := instrument.WellbeingV1
	res, ok := s.scoreSubmission(w, r, def)
	if !ok {
		return
	}
	respond(w, http.StatusOK, res.WellbeingSummary(def))
}

// scoreSubmission decodes the answers, scores them against def and records
// the outcome. It writes the error response itself and returns false on
// failure.
func (s *Server) scoreSubmission(w http.ResponseWriter, r *http.Request, def instrument.Definition) (scoring.Result, bool) {
	var sub scoring.Submission
	if !decode(w, r, &sub) {
		return scoring.Result{}, false
	}

	res, err := sub.Score(def)
	if errors.Is(err, scoring.ErrNoAnswers) {
		respondErr(w, http.StatusBadRequest, err.Error())
		return scoring.Result{}, false
	}
	if err != nil {
		s.respondInternalErr(w, r, err)
		return scoring.Result{}, false
	}

	s.metrics.ObserveAssessment(def.ID, res.Level, res.CrisisFlag)
	if res.CrisisFlag {
		s.logger.Warn("submission raised crisis flag",
			"instrument", def.ID,
			"version", def.Version,
			logField(r),
		)
	}
	return res, true
}
