package harness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Runner updates.
type Metrics struct {
	casesTotal    *prometheus.CounterVec
	caseDuration  *prometheus.HistogramVec
	perfDuration  *prometheus.GaugeVec
	perfIncorrect prometheus.Counter
	runsTotal     prometheus.Counter
}

// NewMetrics registers the harness collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them process-wide, or a fresh
// registry to keep them isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		casesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "harness_cases_total",
			Help: "The total number of cases run, by algorithm and status",
		}, []string{"algorithm", "status"}),

		caseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "harness_case_duration_seconds",
			Help:    "Time spent sorting a single case",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8), //nolint:mnd
		}, []string{"algorithm"}),

		perfDuration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "harness_performance_duration_seconds",
			Help: "Time spent sorting the reverse-sorted input of the given size",
		}, []string{"algorithm", "size"}),

		perfIncorrect: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_performance_incorrect_total",
			Help: "The total number of performance runs whose output was not sorted",
		}),

		runsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_runs_total",
			Help: "The total number of harness runs",
		}),
	}
}

func (m *Metrics) observeCase(r CaseResult) {
	if m == nil {
		return
	}

	m.casesTotal.WithLabelValues(r.Algorithm, r.Status.String()).Inc()
	m.caseDuration.WithLabelValues(r.Algorithm).Observe(r.Elapsed.Seconds())
}

func (m *Metrics) observeSearch(r SearchResult) {
	if m == nil {
		return
	}

	m.casesTotal.WithLabelValues("search/"+r.Case.Mode, r.Status.String()).Inc()
}

func (m *Metrics) observePerf(r PerfResult, size string) {
	if m == nil {
		return
	}

	m.perfDuration.WithLabelValues(r.Algorithm, size).Set(r.Elapsed.Seconds())
}

func (m *Metrics) observePerfIncorrect(n int) {
	if m == nil {
		return
	}

	m.perfIncorrect.Add(float64(n))
}

func (m *Metrics) observeRun() {
	if m == nil {
		return
	}

	m.runsTotal.Inc()
}
