package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus instrumentation for an annealing run: the
// annealer's own step-level counters plus the evaluator worker pool's
// size.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	stepsTotal       prometheus.Counter
	acceptedTotal    prometheus.Counter
	rejectedTotal    prometheus.Counter
	currentCost      prometheus.Gauge
	currentTemp      prometheus.Gauge
	evaluatorWorkers prometheus.Gauge
}

// NewMetrics registers the annealer's collectors against a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	stepsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "annealer_steps_total",
		Help: "Total number of annealing steps taken across all runs",
	})
	acceptedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "annealer_accepted_moves_total",
		Help: "Total number of moves accepted by the Metropolis rule",
	})
	rejectedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "annealer_rejected_moves_total",
		Help: "Total number of moves rejected and reverted",
	})
	currentCost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "annealer_current_cost",
		Help: "Cost of the current calendar state",
	})
	currentTemp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "annealer_current_temperature",
		Help: "Current value of the temperature schedule",
	})
	evaluatorWorkers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "evaluator_worker_pool_size",
		Help: "Number of persistent heuristic worker goroutines",
	})

	registry.MustRegister(stepsTotal, acceptedTotal, rejectedTotal, currentCost, currentTemp, evaluatorWorkers)

	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		stepsTotal:       stepsTotal,
		acceptedTotal:    acceptedTotal,
		rejectedTotal:    rejectedTotal,
		currentCost:      currentCost,
		currentTemp:      currentTemp,
		evaluatorWorkers: evaluatorWorkers,
	}
}

// Handler exposes the Prometheus scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// ObserveStep records one annealing step's outcome.
func (m *Metrics) ObserveStep(accepted bool, cost, temp float64) {
	m.stepsTotal.Inc()
	if accepted {
		m.acceptedTotal.Inc()
	} else {
		m.rejectedTotal.Inc()
	}
	m.currentCost.Set(cost)
	m.currentTemp.Set(temp)
}

// SetEvaluatorWorkers records the evaluator worker pool's size — one
// goroutine per heuristic term, fixed for the process lifetime.
func (m *Metrics) SetEvaluatorWorkers(n int) {
	m.evaluatorWorkers.Set(float64(n))
}
