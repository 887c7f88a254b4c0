package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FetchMetrics exposes counters/histograms for list queries and explorer
// sessions.
type FetchMetrics struct {
	fetchTotal     *prometheus.CounterVec
	fetchLatency   *prometheus.HistogramVec
	explorerActive *prometheus.GaugeVec
	backendErrors  *prometheus.CounterVec
}

func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	m := &FetchMetrics{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitalsync",
			Subsystem: "query",
			Name:      "fetch_total",
			Help:      "Total list fetches by feature and data source",
		}, []string{"feature", "source"}),
		fetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vitalsync",
			Subsystem: "query",
			Name:      "fetch_latency_seconds",
			Help:      "Latency of list fetches including fallback",
			Buckets:   prometheus.DefBuckets,
		}, []string{"feature"}),
		explorerActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "vitalsync",
			Subsystem: "explorer",
			Name:      "sessions_active",
			Help:      "Explorer sessions currently held in memory",
		}, []string{"feature"}),
		backendErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitalsync",
			Subsystem: "backend",
			Name:      "errors_total",
			Help:      "Backend call failures by feature and kind",
		}, []string{"feature", "kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.fetchTotal, m.fetchLatency, m.explorerActive, m.backendErrors)
	return m
}

func (m *FetchMetrics) ObserveFetch(feature, source string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(feature, source).Inc()
	m.fetchLatency.WithLabelValues(feature).Observe(elapsed.Seconds())
}

func (m *FetchMetrics) ObserveBackendError(feature, kind string) {
	if m == nil {
		return
	}
	m.backendErrors.WithLabelValues(feature, kind).Inc()
}

func (m *FetchMetrics) SessionOpened(feature string) {
	if m == nil {
		return
	}
	m.explorerActive.WithLabelValues(feature).Inc()
}

func (m *FetchMetrics) SessionClosed(feature string) {
	if m == nil {
		return
	}
	m.explorerActive.WithLabelValues(feature).Dec()
}
