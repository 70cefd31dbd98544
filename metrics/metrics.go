// Package metrics records batch augmentation metrics with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Entry outcome labels of xsaug_entries_total.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Recorder holds the batch collectors, registered on one Registerer.
type Recorder struct {
	entries    *prometheus.CounterVec
	failures   *prometheus.CounterVec
	iterations prometheus.Histogram
	duration   prometheus.Histogram
	points     *prometheus.GaugeVec
}

// New creates a Recorder and registers its collectors on reg.
// A nil reg leaves the collectors unregistered (usable, but never exported).
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xsaug_entries_total",
				Help: "Processed entries by outcome",
			},
			[]string{"status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xsaug_failures_total",
				Help: "Failed entries by error kind",
			},
			[]string{"kind"},
		),
		iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xsaug_fit_iterations",
				Help:    "Levenberg-Marquardt iterations per successful fit",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xsaug_entry_duration_seconds",
				Help:    "Wall time per entry, from job load to sink",
				Buckets: prometheus.DefBuckets,
			},
		),
		points: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "xsaug_output_points",
				Help: "Rows in the augmented series of an entry",
			},
			[]string{"entry"},
		),
	}
	if reg != nil {
		reg.MustRegister(r.entries, r.failures, r.iterations, r.duration, r.points)
	}

	return r
}

// RecordSuccess records a completed entry.
func (r *Recorder) RecordSuccess(entry string, iterations, points int, seconds float64) {
	r.entries.WithLabelValues(StatusOK).Inc()
	r.iterations.Observe(float64(iterations))
	r.points.WithLabelValues(entry).Set(float64(points))
	r.duration.Observe(seconds)
}

// RecordFailure records a failed entry and its error kind.
func (r *Recorder) RecordFailure(kind string, seconds float64) {
	r.entries.WithLabelValues(StatusFailed).Inc()
	r.failures.WithLabelValues(kind).Inc()
	r.duration.Observe(seconds)
}

// WriteTextfile gathers g and writes it to path in the text exposition
// format (node_exporter textfile collector).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
