// Package driver constructs N independent annealing runs from a master
// seed and fans them out, returning results in input order.
package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"classcalendar/internal/annealer"
	"classcalendar/internal/randstream"
)

// RunSpec describes one run's configuration, minus the RNG — the driver
// injects each run's independent stream.
type RunSpec struct {
	Options annealer.Options
}

// Config controls a multi-run fan-out.
type Config struct {
	MasterSeed uint64
	Runs       []RunSpec

	// Parallel selects whether runs execute concurrently. The reference
	// driver always parallelizes across OS threads; this flag exists so
	// callers can force sequential execution for deterministic debugging.
	Parallel bool
}

// Execute runs every RunSpec to completion and returns their results in the
// same order the specs were given, regardless of completion order.
func Execute(ctx context.Context, cfg Config) ([]*annealer.Result, error) {
	streams := randstream.DeriveN(cfg.MasterSeed, len(cfg.Runs))
	results := make([]*annealer.Result, len(cfg.Runs))

	if !cfg.Parallel {
		for i, spec := range cfg.Runs {
			opts := spec.Options
			opts.RNG = streams[i]
			result, err := annealer.Run(opts)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
		return results, nil
	}

	group, _ := errgroup.WithContext(ctx)
	for i, spec := range cfg.Runs {
		i, spec := i, spec
		group.Go(func() error {
			opts := spec.Options
			opts.RNG = streams[i]
			result, err := annealer.Run(opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
