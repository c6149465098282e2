// Package evaluator implements ParEvaluator, the barrier-synchronized
// worker pool that sums the eleven heuristic terms in parallel against a
// shared mirror of the annealer's state.
package evaluator

import (
	"sync"
	"sync/atomic"

	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
	"classcalendar/internal/heuristics"
)

// ParEvaluator owns a persistent pool of worker goroutines, one per
// heuristic term, plus a mirror of the calendar and constraints the driver
// mutates between cost evaluations. It is explicitly NOT a one-shot
// errgroup fan-out: the same goroutines live for the evaluator's entire
// lifetime and are released one cycle at a time via two barriers, because
// the per-step overhead of spawning eleven goroutines per move would dominate
// the annealer's inner loop.
type ParEvaluator struct {
	mu          sync.RWMutex
	state       *calendar.ClassCalendar
	constraints *constraints.Constraints

	startBarrier  *barrier
	finishBarrier *barrier
	costCounter   atomic.Int64

	terms []heuristics.Term
}

// New spawns one worker per heuristic term and returns a ParEvaluator ready
// to evaluate initState/initConstraints. The evaluator keeps its own clone of
// initState as its mirror, so the caller's calendar and the mirror never
// alias. The goroutines run until the process exits; ParEvaluator has no
// Close because the driver holds one per annealing run for that run's whole
// lifetime.
func New(initState *calendar.ClassCalendar, initConstraints *constraints.Constraints) *ParEvaluator {
	terms := heuristics.AllTerms()

	e := &ParEvaluator{
		state:         initState.Clone(),
		constraints:   initConstraints,
		startBarrier:  newBarrier(1 + len(terms)),
		finishBarrier: newBarrier(1 + len(terms)),
		terms:         terms,
	}

	for _, term := range terms {
		go e.runWorker(term)
	}

	return e
}

func (e *ParEvaluator) runWorker(term heuristics.Term) {
	for {
		e.startBarrier.Wait()

		e.mu.RLock()
		raw := term.Evaluate(e.state, e.constraints)
		e.mu.RUnlock()

		e.costCounter.Add(heuristics.WeightedCost(term, raw))

		e.finishBarrier.Wait()
	}
}

// ApplyChange mutates the shared state under a write-lock. Call this
// between EvalCost calls, never concurrently with one.
func (e *ParEvaluator) ApplyChange(delta calendar.Delta) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Move(delta.SrcDay, delta.SrcSlot, delta.DstDay, delta.DstSlot, delta.Class)
}

// EvalCost zeroes the accumulator, releases the start barrier so every
// worker computes its term against the current state, waits for the finish
// barrier, then reads and scales the accumulator into a floating-point
// cost.
func (e *ParEvaluator) EvalCost() float64 {
	e.costCounter.Store(0)
	e.startBarrier.Wait()
	e.finishBarrier.Wait()
	total := e.costCounter.Load()
	return float64(total) / float64(heuristics.WeightDenominator)
}

// SerialCost recomputes the same sum on the calling goroutine without the
// worker pool. The package tests compare it against EvalCost; EvalCost
// itself does not run this cross-check in any build.
func SerialCost(state *calendar.ClassCalendar, cons *constraints.Constraints) float64 {
	var total int64
	for _, term := range heuristics.AllTerms() {
		total += heuristics.WeightedCost(term, term.Evaluate(state, cons))
	}
	return float64(total) / float64(heuristics.WeightDenominator)
}

// Breakdown computes each heuristic term's weighted contribution to state's
// cost, serially and independently of the worker pool — used once at the
// end of a run for the per-term structured log line, not on the annealer's
// hot path.
func Breakdown(state *calendar.ClassCalendar, cons *constraints.Constraints) map[string]float64 {
	out := make(map[string]float64, len(heuristics.AllTerms()))
	for _, term := range heuristics.AllTerms() {
		raw := term.Evaluate(state, cons)
		out[term.String()] = float64(heuristics.WeightedCost(term, raw)) / float64(heuristics.WeightDenominator)
	}
	return out
}

// CurrentState returns a deep copy of the evaluator's mirrored state, safe
// to inspect without racing the worker pool.
func (e *ParEvaluator) CurrentState() *calendar.ClassCalendar {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}
