package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerDefaultsToInfoOnBadLevel(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: "not-a-level"})
	assert.Equal(t, "info", logger.GetLevel().String())
}

func TestMetricsObserveStepAndScrape(t *testing.T) {
	m := NewMetrics()
	m.ObserveStep(true, 1.5, 2.0)
	m.ObserveStep(false, 1.2, 1.8)
	m.SetEvaluatorWorkers(10)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "annealer_steps_total")
	assert.Contains(t, rec.Body.String(), "evaluator_worker_pool_size")
}
