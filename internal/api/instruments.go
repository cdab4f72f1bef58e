package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
)

// ─── GET /api/instruments/:instrumentID ──────────────────────────────────────

// handleGetInstrument returns a definition so the client can render the form
// with the exact items and version it will be scored against.
func (s *Server) handleGetInstrument(w http.ResponseWriter, r *http.Request) {
	def, ok := instrument.Lookup(chi.URLParam(r, "instrumentID"))
	if !ok {
		respondErr(w, http.StatusNotFound, "instrument not found")
		return
	}
	respond(w, http.StatusOK, def)
}
