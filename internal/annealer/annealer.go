package annealer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
	"classcalendar/internal/evaluator"
	"classcalendar/internal/matcher"
	"classcalendar/internal/stats"
)

// Result is everything a run produces: the final schedule, its cost, timing
// information, the downsampled stat series, and the post-processed room
// assignment.
type Result struct {
	// RunID identifies this run across logs, metrics, and the exported
	// report — a fresh UUID per run rather than a caller-supplied index, so
	// concurrent runs never need to coordinate on naming.
	RunID uuid.UUID

	FinalCalendar *calendar.ClassCalendar
	FinalCost     float64

	StartTime time.Time
	EndTime   time.Time

	// Elapsed is measured from a monotonic clock and is not necessarily
	// equal to EndTime.Sub(StartTime) — the wall clock can change mid-run.
	Elapsed time.Duration

	TotalSteps int
	Stats      map[string][]any

	RoomAssignment map[matcher.AssignmentKey][]constraints.Room

	// TermBreakdown is each heuristic term's weighted contribution to
	// FinalCost, keyed by term name. Callers that want a structured
	// per-term log line at the end of a run read this rather than Run
	// logging it directly, since the annealer package stays free of a
	// logging dependency.
	TermBreakdown map[string]float64
}

// Run executes one simulated-annealing run to completion, synchronously.
func Run(opts Options) (*Result, error) {
	if opts.InitialState == nil {
		return nil, ErrNoInitialState
	}
	if opts.Constraints == nil {
		return nil, ErrNoConstraints
	}
	if opts.RNG == nil {
		return nil, ErrNoRNG
	}
	if err := validateInitialState(opts.InitialState, opts.Constraints); err != nil {
		return nil, err
	}

	startTime := time.Now()
	startInstant := time.Now()

	state := opts.InitialState.Clone()
	tracker := newTracker(opts.StopCondition, opts.EstimatedStatSamples)
	evalPool := evaluator.New(state, opts.Constraints)

	stateCost := evalPool.EvalCost()

	stepIdx := 0
	for !stopConditionMet(opts.StopCondition, stepIdx, startInstant) {
		if err := logStat(tracker, "curr_cost", stateCost); err != nil {
			return nil, err
		}

		x := progressRatio(opts.StopCondition, stepIdx, startInstant)
		if err := logStat(tracker, "x", x); err != nil {
			return nil, err
		}

		t := temperature(x, opts.TemperatureFunction, TemperatureAmplitude)
		if err := logStat(tracker, "temperature", t); err != nil {
			return nil, err
		}

		oldCost := stateCost
		// newCost/ap/accepted default to the no-op values below: a
		// full-calendar cell collision or an empty calendar both mean this
		// step cannot propose a move. These three stats are still logged
		// unconditionally every sampled step — skipping them on the no-op
		// path would desync their series length against curr_cost/x/
		// temperature for every sampled step from here on.
		newCost := oldCost
		ap := 0.0
		accepted := false

		if delta, err := state.MoveRandom(opts.RNG); err == nil {
			if applyErr := evalPool.ApplyChange(delta); applyErr == nil {
				newCost = evalPool.EvalCost()
				ap = acceptanceProbability(oldCost, newCost, t)
				if ap >= opts.RNG.Float64() {
					accepted = true
					stateCost = newCost
				} else {
					revertChange(state, evalPool, delta)
					stateCost = oldCost
				}
			}
		}

		if err := logStat(tracker, "new_cost", newCost); err != nil {
			return nil, err
		}
		if err := logStat(tracker, "acceptance_probability", ap); err != nil {
			return nil, err
		}
		if err := logStat(tracker, "accepted", accepted); err != nil {
			return nil, err
		}

		tracker.IncStep()

		if opts.StepObserver != nil {
			opts.StepObserver(stepIdx, accepted, stateCost, t)
		}
		if opts.ProgressFunc != nil && opts.ProgressInterval > 0 && stepIdx%opts.ProgressInterval == 0 {
			opts.ProgressFunc(stepIdx, totalStepsHint(opts.StopCondition))
		}
		if opts.LiveUpdateFunc != nil && opts.LiveUpdateInterval > 0 && stepIdx%opts.LiveUpdateInterval == 0 {
			opts.LiveUpdateFunc(state.Clone())
		}

		stepIdx++
	}

	endTime := time.Now()
	elapsed := time.Since(startInstant)

	roomAssignment := matcher.AssignRooms(state, opts.Constraints)

	return &Result{
		RunID:          uuid.New(),
		FinalCalendar:  state,
		FinalCost:      stateCost,
		StartTime:      startTime,
		EndTime:        endTime,
		Elapsed:        elapsed,
		TotalSteps:     stepIdx,
		Stats:          tracker.IntoStats(),
		RoomAssignment: roomAssignment,
		TermBreakdown:  evaluator.Breakdown(state, opts.Constraints),
	}, nil
}

// validateInitialState checks invariant 3 (total entries for a class equals
// that class's RequiredHours) for every class Constraints names, before any
// move is proposed against state. A caller-supplied replacement calendar
// that disagrees with the constraints would otherwise silently corrupt that
// invariant for the whole run.
func validateInitialState(state *calendar.ClassCalendar, cons *constraints.Constraints) error {
	for classID, class := range cons.Classes {
		if got := state.TotalForClass(classID); got != class.RequiredHours {
			return fmt.Errorf("%w: class %d has %d entries, want %d", ErrClassHoursMismatch, classID, got, class.RequiredHours)
		}
	}
	return nil
}

// revertChange undoes delta on both the authoritative state and the
// evaluator's mirror, replaying Move with src and dst swapped rather than
// recomputing state from scratch.
func revertChange(state *calendar.ClassCalendar, evalPool *evaluator.ParEvaluator, delta calendar.Delta) {
	inverse := delta.Swap()
	_ = state.Move(inverse.SrcDay, inverse.SrcSlot, inverse.DstDay, inverse.DstSlot, inverse.Class)
	_ = evalPool.ApplyChange(inverse)
}

// newTracker sizes the stat sampling rate so a run logs roughly
// estimatedSamples samples; zero or a negative value falls back to 5000.
func newTracker(stop StopCondition, estimatedSamples int) *stats.Tracker {
	if estimatedSamples <= 0 {
		estimatedSamples = 5000
	}
	switch stop.kind {
	case stopSteps:
		return stats.New(stats.EstimatedSampleCountFromSteps(stop.steps, estimatedSamples))
	default:
		return stats.New(stats.EstimatedSampleCountFromDuration(stop.duration, estimatedSamples))
	}
}

func stopConditionMet(stop StopCondition, stepIdx int, startInstant time.Time) bool {
	switch stop.kind {
	case stopSteps:
		return stepIdx >= stop.steps
	default:
		return time.Since(startInstant) >= stop.duration
	}
}

// progressRatio computes the normalized [0,1] progress used by the
// temperature schedule. For step-bounded runs this is (step+1)/total. For
// time-bounded runs the reference implementation clamps the ratio from
// below by 1 via `.max(1)`, which drives the temperature to zero
// immediately — almost certainly a bug, since the ratio should be clamped
// from *above*. This implementation deliberately uses min(elapsed/total,
// 1.0) instead.
func progressRatio(stop StopCondition, stepIdx int, startInstant time.Time) float64 {
	switch stop.kind {
	case stopSteps:
		return float64(stepIdx+1) / float64(stop.steps)
	default:
		ratio := time.Since(startInstant).Seconds() / stop.duration.Seconds()
		if ratio > 1.0 {
			return 1.0
		}
		return ratio
	}
}

func totalStepsHint(stop StopCondition) int {
	if stop.kind == stopSteps {
		return stop.steps
	}
	return 0
}

// logStat logs a stat and surfaces LogStat's error instead of discarding it:
// a missed or duplicate stat label is a programming error in Run's logging
// sequence, not a recoverable condition, so it aborts the run rather than
// silently desyncing the stat series.
func logStat(tracker *stats.Tracker, label string, value any) error {
	if err := tracker.LogStat(label, value); err != nil {
		return fmt.Errorf("annealer: logging stat %q: %w", label, err)
	}
	return nil
}
