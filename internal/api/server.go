// Package api implements the HTTP layer of the wellbeing risk engine.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nyashahama/wellbeing-risk-engine/internal/chat"
	"github.com/nyashahama/wellbeing-risk-engine/internal/inference"
	"github.com/nyashahama/wellbeing-risk-engine/internal/metrics"
	"github.com/nyashahama/wellbeing-risk-engine/internal/telemetry"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// AllowedOrigins lists the browser origins allowed by CORS. Outside
	// production an empty list reflects any origin.
	AllowedOrigins []string

	// RequestTimeout bounds every request. Zero means 15s.
	RequestTimeout time.Duration
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// classifier decides the /predict level (rules, optionally guarding a
	// remote model).
	classifier inference.Classifier

	// responder writes the assistant's reply to a chat message.
	responder chat.Responder

	// metrics may be nil; all Recorder methods are nil-safe.
	metrics *metrics.Recorder

	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to an http.Server.
func NewServer(
	classifier inference.Classifier,
	responder chat.Responder,
	rec *metrics.Recorder,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	s := &Server{
		classifier: classifier,
		responder:  responder,
		metrics:    rec,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(telemetry.HTTPMiddleware)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	// ── Health & metrics ──────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {
		r.Post("/predict", s.handlePredict)

		r.Post("/questionnaire/submit", s.handleSubmitQuestionnaire)
		r.Post("/wellbeing/submit", s.handleSubmitWellbeing)

		r.Post("/chat/messages", s.handlePostChatMessage)

		// Instrument definitions for rendering the forms.
		r.Get("/instruments/{instrumentID}", s.handleGetInstrument)
	})

	return r
}
