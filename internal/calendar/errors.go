package calendar

import "errors"

// Error kinds raised by the move operator and the bounded-enum constructors.
// These mirror the taxonomy the reference implementation models as distinct
// error enum variants (DestinationFull, SourceEmpty, NoClasses,
// RandomDestinationFull) plus the construction-time validation errors
// (IncorrectDataLen, RangeExceeded). Each is a sentinel so callers can use
// errors.Is against the wrapped form returned by calendar operations.
var (
	// ErrDestinationFull is returned by Add when the target cell already
	// holds the maximum representable occupancy count.
	ErrDestinationFull = errors.New("calendar: destination cell is full")

	// ErrSourceEmpty is returned by Remove when no matching entry exists
	// at the given (day, slot, class).
	ErrSourceEmpty = errors.New("calendar: source cell has no matching entry")

	// ErrNoClasses is returned by RemoveAny when the class has zero
	// entries anywhere in the calendar.
	ErrNoClasses = errors.New("calendar: class has no entries to remove")

	// ErrRandomDestinationFull is returned by MoveRandom when the
	// randomly chosen destination cell is already full; the calendar is
	// left unmodified and the caller should treat this as a no-op step.
	ErrRandomDestinationFull = errors.New("calendar: randomly chosen destination is full")

	// ErrNoClassesToMove is returned by MoveRandom when the calendar has
	// zero entries across all classes.
	ErrNoClassesToMove = errors.New("calendar: calendar has no entries to move")

	// ErrIncorrectDataLen is returned when constructing a WeekCalendar
	// from a slice whose length does not match DaysPerWeek*SlotsPerDay.
	ErrIncorrectDataLen = errors.New("calendar: incorrect data length")

	// ErrRangeExceeded is returned by the bounded Day/Slot constructors.
	ErrRangeExceeded = errors.New("calendar: value out of range")
)
