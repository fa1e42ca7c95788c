// Package metrics holds the Prometheus instrumentation for the
// pipeline. All methods are nil-safe so library callers can skip
// metrics entirely.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline activity.
type Metrics struct {
	classifications *prometheus.CounterVec
	extractions     *prometheus.CounterVec
	llmFallbacks    *prometheus.CounterVec
}

// New creates and registers the pipeline metrics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noteflow",
			Name:      "classifications_total",
			Help:      "Classifications produced, by note type and method.",
		}, []string{"type", "method"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noteflow",
			Name:      "extractions_total",
			Help:      "Extraction calls, by record kind.",
		}, []string{"kind"}),
		llmFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noteflow",
			Name:      "llm_fallbacks_total",
			Help:      "LLM failures recovered by the heuristic path, by stage.",
		}, []string{"stage"}),
	}
	reg.MustRegister(m.classifications, m.extractions, m.llmFallbacks)
	return m
}

// ObserveClassification records one classification result.
func (m *Metrics) ObserveClassification(noteType, method string) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(noteType, method).Inc()
}

// ObserveExtraction records one extraction call.
func (m *Metrics) ObserveExtraction(kind string) {
	if m == nil {
		return
	}
	m.extractions.WithLabelValues(kind).Inc()
}

// ObserveLLMFallback records one heuristic fallback after an LLM
// failure.
func (m *Metrics) ObserveLLMFallback(stage string) {
	if m == nil {
		return
	}
	m.llmFallbacks.WithLabelValues(stage).Inc()
}
