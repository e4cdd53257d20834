package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes recorded by RateFetchesTotal.
const (
	OutcomeFresh       = "fresh"
	OutcomeFallback    = "fallback"
	OutcomeUnavailable = "unavailable"
	OutcomeDiscarded   = "discarded"
)

// ConversionMetrics holds the counters of the rate-fetch-and-convert pipeline.
type ConversionMetrics struct {
	// Pair selections by outcome
	RateFetchesTotal *prometheus.CounterVec

	// Upstream call latency per endpoint (latest, history)
	ProviderRequestDuration *prometheus.HistogramVec

	// Conversions served, labelled by whether the rate was stale
	ConversionsTotal *prometheus.CounterVec

	// Background write failures (cache, history)
	BackgroundWriteFailuresTotal *prometheus.CounterVec

	// Open sessions
	ActiveSessions prometheus.Gauge
}

// NewConversionMetrics registers the metrics on reg.
func NewConversionMetrics(reg prometheus.Registerer) *ConversionMetrics {
	factory := promauto.With(reg)
	return &ConversionMetrics{
		RateFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyswap_rate_fetches_total",
				Help: "Pair selections by outcome",
			},
			[]string{"outcome"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moneyswap_provider_request_duration_seconds",
				Help:    "Latency of calls to the remote rate services",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "status"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyswap_conversions_total",
				Help: "Conversions served",
			},
			[]string{"stale"},
		),
		BackgroundWriteFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyswap_background_write_failures_total",
				Help: "Failed detached writes",
			},
			[]string{"target"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "moneyswap_active_sessions",
				Help: "Open conversion sessions",
			},
		),
	}
}

// RecordFetch counts a pair selection outcome.
func (m *ConversionMetrics) RecordFetch(outcome string) {
	if m == nil {
		return
	}
	m.RateFetchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveProviderRequest records an upstream call.
func (m *ConversionMetrics) ObserveProviderRequest(endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.ProviderRequestDuration.WithLabelValues(endpoint, status).Observe(seconds)
}

// RecordConversion counts a served conversion.
func (m *ConversionMetrics) RecordConversion(stale bool) {
	if m == nil {
		return
	}
	label := "false"
	if stale {
		label = "true"
	}
	m.ConversionsTotal.WithLabelValues(label).Inc()
}

// RecordWriteFailure counts a failed detached write.
func (m *ConversionMetrics) RecordWriteFailure(target string) {
	if m == nil {
		return
	}
	m.BackgroundWriteFailuresTotal.WithLabelValues(target).Inc()
}

// SessionOpened increments the active session gauge.
func (m *ConversionMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

// SessionClosed decrements the active session gauge.
func (m *ConversionMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}
