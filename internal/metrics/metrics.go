// Package metrics exposes Prometheus collectors describing minimization runs.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pborges/qm/internal/cover"
	"github.com/pborges/qm/internal/qm"
)

const namespace = "qm"

// Outcome labels of the runs counter.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidConfig   = "invalid_config"
	OutcomeTooManyCompares = "too_many_compares"
	OutcomeUncovered       = "uncovered"
	OutcomeError           = "error"
)

// Recorder owns a registry with the run collectors.
type Recorder struct {
	reg        *prometheus.Registry
	runs       *prometheus.CounterVec
	compares   prometheus.Histogram
	primes     prometheus.Histogram
	essentials prometheus.Histogram
}

// New returns a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Minimization runs by outcome.",
		}, []string{"outcome"}),
		compares: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compares",
			Help:      "Pairwise term compares per successful run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		primes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prime_implicants",
			Help:      "Prime implicants per successful run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		essentials: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "selected_implicants",
			Help:      "Implicants in the selected cover per successful run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	r.reg.MustRegister(r.runs, r.compares, r.primes, r.essentials)
	return r
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records the outcome of one Resolve call.
func (r *Recorder) Observe(res *qm.Result, err error) {
	r.runs.WithLabelValues(Outcome(err)).Inc()
	if err != nil || res == nil {
		return
	}
	r.compares.Observe(float64(res.Compares))
	r.primes.Observe(float64(len(res.Primes)))
	r.essentials.Observe(float64(len(res.Essentials)))
}

// WriteFile stores the metrics in the text exposition format, for the node
// exporter textfile collector.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Outcome maps a Resolve error to its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, qm.ErrInvalidConfig):
		return OutcomeInvalidConfig
	case errors.Is(err, qm.ErrTooManyCompares):
		return OutcomeTooManyCompares
	case errors.Is(err, cover.ErrUncovered):
		return OutcomeUncovered
	}
	return OutcomeError
}
