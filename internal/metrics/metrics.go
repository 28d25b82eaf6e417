// Package metrics holds the dedicated Prometheus registry for the
// planfold service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// SolveRuns counts optimizations by objective mode.
	SolveRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planfold_solve_runs_total", Help: "Optimizations run, by objective mode."},
		[]string{"mode"},
	)
	// SolveDuration records solve wall time in seconds.
	SolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "planfold_solve_duration_seconds", Help: "Solve duration in seconds.", Buckets: prometheus.DefBuckets},
	)
	// SelectedIntervals tracks selection sizes.
	SelectedIntervals = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "planfold_selected_intervals", Help: "Intervals selected per plan.", Buckets: prometheus.ExponentialBuckets(1, 2, 12)},
	)

	// HTTPRequests counts requests by method, route, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)
)

var regOnce sync.Once

// Register wires all collectors plus the Go/process collectors into
// the registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(SolveRuns)
		Registry.MustRegister(SolveDuration)
		Registry.MustRegister(SelectedIntervals)
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// SolveMode labels an optimization by its trade-off regime.
func SolveMode(tradeOff float64) string {
	switch tradeOff {
	case 0:
		return "cost"
	case 1:
		return "count"
	default:
		return "blend"
	}
}
