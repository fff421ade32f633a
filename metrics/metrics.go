// Package metrics exports solver statistics as Prometheus metrics.
//
// A Recorder owns one set of collectors registered on a caller-supplied
// registerer, so tests and embedders can use isolated registries:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.New(reg)
//	start := time.Now()
//	err := engine.Run()
//	rec.Record(engine.Strategy().String(), engine.Stats(), time.Since(start), err)
package metrics

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/preflow/preflow"
)

// Result label values of preflow_runs_total.
const (
	ResultSuccess  = "success"
	ResultCanceled = "canceled"
	ResultDeadline = "deadline"
	ResultInvalid  = "invalid"
	ResultOther    = "other"
)

// Recorder holds the solver collectors.
type Recorder struct {
	runs       *prometheus.CounterVec
	pushes     *prometheus.CounterVec
	relabels   *prometheus.CounterVec
	discharges *prometheus.CounterVec
	rounds     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New registers the solver collectors on reg. It panics if they are
// already registered there, like promauto.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	strategy := []string{"strategy"}

	return &Recorder{
		// runs counts solves by strategy and result type.
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_runs_total",
			Help: "Total max-flow solves by strategy and result",
		}, []string{"strategy", "result"}),
		pushes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_pushes_total",
			Help: "Pushes performed, forward and backward",
		}, strategy),
		relabels: f.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_relabels_total",
			Help: "Relabel operations performed",
		}, strategy),
		discharges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_discharges_total",
			Help: "Discharge calls performed",
		}, strategy),
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_rounds_total",
			Help: "Synchronous rounds of the parallel strategy",
		}, strategy),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "preflow_run_duration_seconds",
			Help:    "Wall time of a solve",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, strategy),
	}
}

// Record accounts one solve: its operation counts, duration and result.
// err is the error returned by the solve, nil on success.
func (r *Recorder) Record(strategy string, s preflow.Stats, d time.Duration, err error) {
	r.pushes.WithLabelValues(strategy).Add(float64(s.Pushes + s.PushBacks))
	r.relabels.WithLabelValues(strategy).Add(float64(s.Relabels))
	r.discharges.WithLabelValues(strategy).Add(float64(s.Discharges))
	r.rounds.WithLabelValues(strategy).Add(float64(s.Rounds))
	r.duration.WithLabelValues(strategy).Observe(d.Seconds())
	r.runs.WithLabelValues(strategy, Classify(err)).Inc()
}

// Runs exposes preflow_runs_total for direct inspection.
func (r *Recorder) Runs() *prometheus.CounterVec { return r.runs }

// Classify maps a solve error to a result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, context.Canceled):
		return ResultCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ResultDeadline
	case errors.Is(err, preflow.ErrNotInitialized),
		errors.Is(err, preflow.ErrInfeasibleFlow),
		errors.Is(err, preflow.ErrElevatorMismatch),
		errors.Is(err, preflow.ErrNotTopological):
		return ResultInvalid
	default:
		return ResultOther
	}
}

// WriteText writes everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
