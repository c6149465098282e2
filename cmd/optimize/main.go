package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"classcalendar/internal/annealer"
	"classcalendar/internal/appconfig"
	"classcalendar/internal/driver"
	"classcalendar/internal/heuristics"
	"classcalendar/internal/inputs"
	"classcalendar/internal/reportexport"
	"classcalendar/internal/telemetry"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		panic(err)
	}

	logger := telemetry.NewLogger(telemetry.LoggerConfig{Level: cfg.LogLevel, Pretty: cfg.LogFormat != "json"})

	logger.Info().Str("input", cfg.InputPath).Msg("loading constraints")
	cons, err := inputs.LoadConstraints(cfg.InputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load constraints")
	}
	logger.Info().
		Int("classes", len(cons.Classes)).
		Int("instructors", len(cons.Instructors)).
		Int("total_required_hours", cons.TotalRequiredHours()).
		Msg("constraints loaded")

	metrics := telemetry.NewMetrics()
	if cfg.Metrics.Enabled {
		metrics.SetEvaluatorWorkers(len(heuristics.AllTerms()))
		go func() {
			logger.Info().Str("addr", cfg.Metrics.Addr).Msg("serving prometheus metrics")
			server := &http.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler()}
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	runs := make([]driver.RunSpec, cfg.Runs.Count)
	seedRNG := rand.New(rand.NewSource(int64(cfg.Runs.MasterSeed)))
	for i := range runs {
		stop := annealer.Steps(cfg.Runs.Steps)
		if cfg.Runs.UseTime {
			stop = annealer.Time(cfg.Runs.TimeBudget)
		}
		runs[i] = driver.RunSpec{
			Options: annealer.Options{
				InitialState:         inputs.RandomInitialState(cons, seedRNG),
				Constraints:          cons,
				StopCondition:        stop,
				TemperatureFunction:  annealer.Linear,
				EstimatedStatSamples: 5000,
				ProgressInterval:     1000,
				ProgressFunc: func(stepIdx, total int) {
					logger.Debug().Int("step", stepIdx).Int("total", total).Msg("annealing progress")
				},
				StepObserver: func(stepIdx int, accepted bool, cost, temp float64) {
					if cfg.Metrics.Enabled {
						metrics.ObserveStep(accepted, cost, temp)
					}
				},
			},
		}
	}

	logger.Info().Int("runs", len(runs)).Bool("parallel", cfg.Runs.Parallel).Msg("starting annealing runs")
	startedAt := time.Now()

	results, err := driver.Execute(context.Background(), driver.Config{
		MasterSeed: cfg.Runs.MasterSeed,
		Runs:       runs,
		Parallel:   cfg.Runs.Parallel,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("annealing run failed")
	}

	for i, r := range results {
		logger.Info().
			Int("run", i).
			Str("run_id", r.RunID.String()).
			Float64("final_cost", r.FinalCost).
			Int("total_steps", r.TotalSteps).
			Dur("elapsed", r.Elapsed).
			Msg("run complete")

		for term, cost := range r.TermBreakdown {
			logger.Debug().
				Str("run_id", r.RunID.String()).
				Str("term", term).
				Float64("cost", cost).
				Msg("term cost breakdown")
		}
	}

	report := reportexport.BuildReport(results)
	if err := reportexport.WriteFile(cfg.OutputPath, report); err != nil {
		logger.Fatal().Err(err).Msg("failed to write report")
	}

	logger.Info().
		Str("output", cfg.OutputPath).
		Dur("total_elapsed", time.Since(startedAt)).
		Msg("optimization complete")

	if cfg.Metrics.Enabled {
		// Give any in-flight scrape a moment before the process exits.
		time.Sleep(50 * time.Millisecond)
	}
}
