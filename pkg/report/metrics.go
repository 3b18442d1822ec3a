// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/flul/flultest"
)

// MetricsNamespace prefixes all metric names.
const MetricsNamespace = "flultest"

// Metrics records a run's report as prometheus metrics and, if Path is
// set, writes them in the textfile exposition format to Path, e.g. for
// node_exporter's textfile collector.
type Metrics struct {
	Path string

	registry *prometheus.Registry
	tests    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	run      prometheus.Gauge
}

// NewMetrics returns a metrics reporter with its own prometheus
// registry writing to given path.
func NewMetrics(path string) *Metrics {
	m := &Metrics{
		Path:     path,
		registry: prometheus.NewRegistry(),
		tests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_total",
			Help:      "Number of executed tests by outcome",
		}, []string{"suite", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "test_duration_seconds",
			Help:      "Duration of executed tests",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"suite"}),
		run: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the latest test run",
		}),
	}
	m.registry.MustRegister(m.tests, m.duration, m.run)
	return m
}

// Gatherer exposes the reporter's metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// Tests is the counter of executed tests by suite and outcome.
func (m *Metrics) Tests() *prometheus.CounterVec { return m.tests }

// Report implements flultest.Reporter.
func (m *Metrics) Report(r *flultest.Report) error {
	for _, res := range r.Results {
		m.tests.WithLabelValues(
			res.Metadata.Suite, res.Outcome.String()).Inc()
		m.duration.WithLabelValues(
			res.Metadata.Suite).Observe(res.Duration.Seconds())
	}
	m.run.Set(r.Duration.Seconds())
	if m.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.Path), 0o755); err != nil {
		return fmt.Errorf("report: metrics: %w", err)
	}
	if err := prometheus.WriteToTextfile(m.Path, m.registry); err != nil {
		return fmt.Errorf("report: metrics: %w", err)
	}
	return nil
}
