// Package metrics exposes Prometheus collectors for the scoring endpoints.
// Label values are limited to instrument ids, risk levels and prediction
// sources, so cardinality stays fixed.
package metrics

import (
	"net/http"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "riskengine"

// Recorder counts scoring outcomes. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry    *prometheus.Registry
	assessments *prometheus.CounterVec
	crisisFlags *prometheus.CounterVec
	predictions *prometheus.CounterVec
	chat        *prometheus.CounterVec
}

// New registers the collectors (plus Go runtime and process collectors) on a
// fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instrument_assessments_total",
			Help:      "Scored instrument submissions by instrument and risk band.",
		}, []string{"instrument", "level"}),
		crisisFlags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instrument_crisis_flags_total",
			Help:      "Instrument submissions that raised the safety-critical crisis flag.",
		}, []string{"instrument"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Composite risk predictions by level and source.",
		}, []string{"level", "source"}),
		chat: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_messages_total",
			Help:      "Classified chat messages by severity.",
		}, []string{"severity"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.assessments,
		r.crisisFlags,
		r.predictions,
		r.chat,
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveAssessment records one scored instrument submission.
func (r *Recorder) ObserveAssessment(instrumentID string, level risk.Level, crisisFlag bool) {
	if r == nil {
		return
	}
	r.assessments.WithLabelValues(instrumentID, level.String()).Inc()
	if crisisFlag {
		r.crisisFlags.WithLabelValues(instrumentID).Inc()
	}
}

// ObservePrediction records one composite prediction.
func (r *Recorder) ObservePrediction(level risk.Level, source string) {
	if r == nil {
		return
	}
	r.predictions.WithLabelValues(level.String(), source).Inc()
}

// ObserveChat records one classified chat message.
func (r *Recorder) ObserveChat(severity risk.Level) {
	if r == nil {
		return
	}
	r.chat.WithLabelValues(severity.String()).Inc()
}
