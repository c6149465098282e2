// Package appconfig loads CLI configuration from .env plus environment
// overrides, the way the rest of the pack's services do.
package appconfig

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level configuration for one optimize invocation.
type Config struct {
	LogLevel  string
	LogFormat string

	InputPath  string
	OutputPath string

	Runs RunsConfig

	Metrics MetricsConfig
}

// RunsConfig controls how many annealing runs to fan out and how long
// each one runs.
type RunsConfig struct {
	Count      int
	MasterSeed uint64
	Steps      int
	TimeBudget time.Duration
	UseTime    bool
	Parallel   bool
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Load reads .env (if present) plus environment variables into a Config,
// applying the same defaults-then-override pattern used elsewhere in the
// corpus: godotenv populates the process environment, viper reads it with
// AutomaticEnv, and SetDefault supplies every value no environment
// variable overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  v.GetString("LOG_FORMAT"),
		InputPath:  v.GetString("INPUT_PATH"),
		OutputPath: v.GetString("OUTPUT_PATH"),
		Runs: RunsConfig{
			Count:      v.GetInt("RUNS_COUNT"),
			MasterSeed: uint64(v.GetInt64("RUNS_MASTER_SEED")),
			Steps:      v.GetInt("RUNS_STEPS"),
			TimeBudget: v.GetDuration("RUNS_TIME_BUDGET"),
			UseTime:    v.GetBool("RUNS_USE_TIME"),
			Parallel:   v.GetBool("RUNS_PARALLEL"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Addr:    v.GetString("METRICS_ADDR"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("INPUT_PATH", "./constraints.json")
	v.SetDefault("OUTPUT_PATH", "./result.json")

	v.SetDefault("RUNS_COUNT", 4)
	v.SetDefault("RUNS_MASTER_SEED", 0)
	v.SetDefault("RUNS_STEPS", 200000)
	v.SetDefault("RUNS_TIME_BUDGET", "5m")
	v.SetDefault("RUNS_USE_TIME", false)
	v.SetDefault("RUNS_PARALLEL", true)

	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("METRICS_ADDR", ":9090")
}
