// Package observability exposes Prometheus metrics for trip loading and
// statistics runs.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes recorded by ObserveRun.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Metrics holds the collectors on a private registry, so a process can
// export exactly these series to a textfile.
type Metrics struct {
	registry     *prometheus.Registry
	rowsLoaded   *prometheus.CounterVec
	rowsSkipped  *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	statDuration *prometheus.HistogramVec
	runs         *prometheus.CounterVec
}

// NewMetrics registers the bikeshare collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeshare",
			Subsystem: "loader",
			Name:      "rows_total",
			Help:      "Trip rows parsed from city data files.",
		}, []string{"city"}),
		rowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeshare",
			Subsystem: "loader",
			Name:      "skipped_rows_total",
			Help:      "Trip rows dropped because a required field was malformed.",
		}, []string{"city"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bikeshare",
			Subsystem: "loader",
			Name:      "duration_seconds",
			Help:      "Time spent reading and parsing a city data file.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"city"}),
		statDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bikeshare",
			Subsystem: "stats",
			Name:      "duration_seconds",
			Help:      "Time spent in each statistics routine.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"routine"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeshare",
			Name:      "runs_total",
			Help:      "Analysis runs by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.rowsLoaded, m.rowsSkipped, m.loadDuration, m.statDuration, m.runs)
	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveLoad records one city file read.
func (m *Metrics) ObserveLoad(city string, rows, skipped int, elapsed time.Duration) {
	m.rowsLoaded.WithLabelValues(city).Add(float64(rows))
	m.rowsSkipped.WithLabelValues(city).Add(float64(skipped))
	m.loadDuration.WithLabelValues(city).Observe(elapsed.Seconds())
}

// ObserveStat records one statistics routine run.
func (m *Metrics) ObserveStat(routine string, elapsed time.Duration) {
	m.statDuration.WithLabelValues(routine).Observe(elapsed.Seconds())
}

// ObserveRun counts an analysis run by outcome.
func (m *Metrics) ObserveRun(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes the metrics in text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
