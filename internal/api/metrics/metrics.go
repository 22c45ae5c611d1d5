package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var SimulationRunsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "funding_sim_runs_total",
		Help: "Simulation runs by endpoint and outcome.",
	}, []string{"endpoint", "status"})

var SimulationDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "funding_sim_run_duration_seconds",
		Help:    "Wall time of simulation requests.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"endpoint"})

var LastScenariosMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "funding_sim_last_scenarios",
		Help: "Scenario count of the most recent simulation.",
	})

var HTTPRequestsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "funding_sim_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

var CachedResultsMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "funding_sim_cached_results",
		Help: "Simulation results currently held for sample retrieval.",
	})

func init() {
	prometheus.MustRegister(
		SimulationRunsMetrics,
		SimulationDurationMetrics,
		LastScenariosMetrics,
		HTTPRequestsMetrics,
		CachedResultsMetrics,
	)
}
