// Package stats implements a step-indexed, downsampled named-value log with
// strict per-sampled-step logging invariants: every stat must be logged
// exactly once per sampled step, never zero times, never twice.
package stats

import (
	"errors"
	"fmt"
	"time"
)

// Errors raised by LogStat when a caller violates the once-per-sampled-step
// invariant.
var (
	// ErrMissedStatLogging is returned when a stat vector already has fewer
	// entries logged than the current sample index but the caller is
	// trying to log a value for an index further along — i.e. a previous
	// sampled step never logged this stat at all.
	ErrMissedStatLogging = errors.New("stats: missed logging this stat in a prior sampled step")

	// ErrMultiStatLogging is returned when the same stat is logged twice
	// within the same sampled step.
	ErrMultiStatLogging = errors.New("stats: logging the same stat twice in one step")
)

// rateKind distinguishes the two ways a sampling rate can be specified.
type rateKind int

const (
	rateSteps rateKind = iota
	rateDuration
)

// SamplingRate controls how often a step increment becomes a sampled step
// worth logging. Construct with Steps or Duration.
type SamplingRate struct {
	kind     rateKind
	steps    int
	duration time.Duration
}

// Steps samples every n-th step.
func Steps(n int) SamplingRate {
	return SamplingRate{kind: rateSteps, steps: n}
}

// Duration samples whenever more than d has elapsed since the last sample.
func Duration(d time.Duration) SamplingRate {
	return SamplingRate{kind: rateDuration, duration: d}
}

// EstimatedSampleCountFromSteps derives a SamplingRate from a total step
// count and a target number of samples, rounding the per-step interval up
// so the resulting sample count never exceeds estimatedSize.
func EstimatedSampleCountFromSteps(totalSteps, estimatedSize int) SamplingRate {
	if estimatedSize <= 0 {
		estimatedSize = 1
	}
	n := (totalSteps + estimatedSize - 1) / estimatedSize
	if n < 1 {
		n = 1
	}
	return Steps(n)
}

// EstimatedSampleCountFromDuration derives a SamplingRate from a total wall
// clock budget and a target number of samples.
func EstimatedSampleCountFromDuration(total time.Duration, estimatedSize int) SamplingRate {
	if estimatedSize <= 0 {
		estimatedSize = 1
	}
	return Duration(total / time.Duration(estimatedSize))
}

// Tracker accumulates named value series, downsampled per SamplingRate, with
// nowFunc injected so tests can control elapsed-time sampling
// deterministically.
type Tracker struct {
	stepIndex      int
	statsIndex     int
	samplingRate   SamplingRate
	stats          map[string][]any
	isLoggingStep  bool
	lastSampleTime time.Time
	nowFunc        func() time.Time
}

// New returns a Tracker sampling at the given rate. The first step (index 0)
// is always a logging step.
func New(rate SamplingRate) *Tracker {
	return newWithClock(rate, time.Now)
}

func newWithClock(rate SamplingRate, nowFunc func() time.Time) *Tracker {
	return &Tracker{
		samplingRate:   rate,
		stats:          make(map[string][]any),
		isLoggingStep:  true,
		lastSampleTime: nowFunc(),
		nowFunc:        nowFunc,
	}
}

// IncStep advances to the next step, deciding whether this step is a
// sampled (logging) step.
func (t *Tracker) IncStep() {
	t.stepIndex++

	var sample bool
	switch t.samplingRate.kind {
	case rateSteps:
		sample = t.samplingRate.steps > 0 && t.stepIndex%t.samplingRate.steps == 0
	case rateDuration:
		sample = t.nowFunc().Sub(t.lastSampleTime) > t.samplingRate.duration
	}

	if sample {
		t.isLoggingStep = true
		t.statsIndex++
		t.lastSampleTime = t.nowFunc()
	} else {
		t.isLoggingStep = false
	}
}

// LogStat records value under label for the current sampled step. Calls on
// a non-sampled step are silently skipped, matching the downsampling
// contract. Calling it twice for the same label within one sampled step
// returns ErrMultiStatLogging; calling it for a label that fell behind the
// current sample index (a prior sampled step skipped this label entirely)
// returns ErrMissedStatLogging.
func (t *Tracker) LogStat(label string, value any) error {
	if !t.isLoggingStep {
		return nil
	}

	series := t.stats[label]
	switch {
	case len(series) < t.statsIndex:
		return fmt.Errorf("%w: %s", ErrMissedStatLogging, label)
	case len(series) == t.statsIndex:
		t.stats[label] = append(series, value)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrMultiStatLogging, label)
	}
}

// IntoStats returns the accumulated series, keyed by label. The Tracker
// should not be used afterward.
func (t *Tracker) IntoStats() map[string][]any {
	return t.stats
}

// StepIndex returns the number of IncStep calls made so far.
func (t *Tracker) StepIndex() int {
	return t.stepIndex
}

// StatsIndex returns the number of sampled steps reached so far.
func (t *Tracker) StatsIndex() int {
	return t.statsIndex
}
