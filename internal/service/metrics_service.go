package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/sma-grade-report/internal/models"
)

// MetricsService records per-run counters in a private registry so they can
// be exported once the batch finishes.
type MetricsService struct {
	registry     *prometheus.Registry
	linesTotal   *prometheus.CounterVec
	linesSkipped *prometheus.CounterVec
	enrollments  prometheus.Counter
	runDuration  prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewMetricsService registers the run collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	linesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grade_report_lines_total",
		Help: "Input lines read, by source file",
	}, []string{"source"})

	linesSkipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grade_report_lines_skipped_total",
		Help: "Input lines skipped with a diagnostic, by source file and reason",
	}, []string{"source", "kind"})

	enrollments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grade_report_enrollments_total",
		Help: "Enrollment records written to the report",
	})

	runDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "grade_report_run_duration_seconds",
		Help: "Wall time of the last report run",
	})

	lastSuccess := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "grade_report_last_success_timestamp_seconds",
		Help: "Unix time the last successful run finished",
	})

	registry.MustRegister(linesTotal, linesSkipped, enrollments, runDuration, lastSuccess)

	return &MetricsService{
		registry:     registry,
		linesTotal:   linesTotal,
		linesSkipped: linesSkipped,
		enrollments:  enrollments,
		runDuration:  runDuration,
		lastSuccess:  lastSuccess,
	}
}

// Registry exposes the underlying gatherer.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveLine counts a line read from source.
func (m *MetricsService) ObserveLine(source models.Source) {
	if m == nil {
		return
	}
	m.linesTotal.WithLabelValues(string(source)).Inc()
}

// ObserveSkip counts a line skipped with a diagnostic.
func (m *MetricsService) ObserveSkip(source models.Source, kind models.IssueKind) {
	if m == nil {
		return
	}
	m.linesSkipped.WithLabelValues(string(source), string(kind)).Inc()
}

// ObserveRun records a completed run.
func (m *MetricsService) ObserveRun(duration time.Duration, enrollments int, finishedAt time.Time) {
	if m == nil {
		return
	}
	m.runDuration.Set(duration.Seconds())
	m.enrollments.Add(float64(enrollments))
	m.lastSuccess.Set(float64(finishedAt.Unix()))
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (m *MetricsService) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
