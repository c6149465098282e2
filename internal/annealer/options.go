// Package annealer implements the main simulated-annealing loop: propose a
// random move, evaluate its cost, accept or revert under the Metropolis
// rule, and advance a linear temperature schedule.
package annealer

import (
	"math/rand"
	"time"

	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
)

// stopKind distinguishes the two ways a run can be bounded.
type stopKind int

const (
	stopSteps stopKind = iota
	stopTime
)

// StopCondition bounds a run either by a fixed step count or a wall-clock
// budget. Construct with Steps or Time.
type StopCondition struct {
	kind     stopKind
	steps    int
	duration time.Duration
}

// Steps bounds a run to exactly n steps.
func Steps(n int) StopCondition {
	return StopCondition{kind: stopSteps, steps: n}
}

// Time bounds a run to d of wall-clock time.
func Time(d time.Duration) StopCondition {
	return StopCondition{kind: stopTime, duration: d}
}

// TemperatureFunction is a closed finite set, modeled as a tagged variant
// rather than an interface, matching the annealer's requirement for static
// dispatch so the parallel cost sum stays reproducible.
type TemperatureFunction int

// Linear is the only temperature function currently defined: it falls
// linearly from full amplitude at the start of a run to zero at the end.
const Linear TemperatureFunction = iota

// TemperatureAmplitude is the fixed multiplier applied to the normalized
// temperature curve.
const TemperatureAmplitude = 3.0

// ProgressFunc is invoked periodically (every ProgressInterval steps) with
// the current step index and, for step-bounded runs, the total step count.
// It replaces the reference implementation's progress-bar/multi-progress
// variants with a single callback hook, since terminal rendering is an
// application concern, not a core one.
type ProgressFunc func(stepIndex int, totalSteps int)

// LiveUpdateFunc is invoked every LiveUpdateInterval steps with a snapshot
// of the current calendar, for callers that want to observe a run in
// progress (e.g. a web UI polling intermediate states).
type LiveUpdateFunc func(state *calendar.ClassCalendar)

// StepObserver is invoked unconditionally after every step, sampled or not,
// with that step's outcome — unlike ProgressFunc/LiveUpdateFunc it is never
// rate-limited by an interval, since a metrics exporter needs one
// observation per step to keep its counters accurate.
type StepObserver func(stepIndex int, accepted bool, cost, temperature float64)

// Options configures one annealing run.
type Options struct {
	InitialState  *calendar.ClassCalendar
	Constraints   *constraints.Constraints
	StopCondition StopCondition

	TemperatureFunction TemperatureFunction

	// RNG drives every random move and the Metropolis acceptance draw.
	// Callers supply one so multi-run drivers can hand each run an
	// independent, reproducible stream.
	RNG *rand.Rand

	// ProgressInterval is how often, in steps, ProgressFunc fires. Zero
	// disables progress reporting.
	ProgressInterval int
	ProgressFunc     ProgressFunc

	// LiveUpdateInterval is how often, in steps, LiveUpdateFunc fires.
	// Zero disables live updates.
	LiveUpdateInterval int
	LiveUpdateFunc     LiveUpdateFunc

	// EstimatedStatSamples targets roughly this many stat samples across
	// the whole run, downsampling steps accordingly.
	EstimatedStatSamples int

	// StepObserver, if set, is called after every step with that step's
	// acceptance outcome, current cost, and temperature — the hook
	// telemetry exporters use to drive per-step metrics.
	StepObserver StepObserver
}
