package annealer

import "errors"

// ErrNoInitialState is returned by Run when Options.InitialState is nil.
var ErrNoInitialState = errors.New("annealer: options must carry an initial state")

// ErrNoConstraints is returned by Run when Options.Constraints is nil.
var ErrNoConstraints = errors.New("annealer: options must carry a constraints record")

// ErrNoRNG is returned by Run when Options.RNG is nil — the driver is
// responsible for handing each run its own independent stream.
var ErrNoRNG = errors.New("annealer: options must carry a random source")

// ErrClassHoursMismatch is returned by Run when an externally supplied
// Options.InitialState places a different number of entries for some class
// than that class's RequiredHours in Options.Constraints — a replacement
// calendar handed in from outside the package must already satisfy
// invariant 3 (total entries per class equals required hours) before the
// annealer ever proposes a move against it.
var ErrClassHoursMismatch = errors.New("annealer: initial state entry counts disagree with constraints' required hours")
