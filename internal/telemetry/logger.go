// Package telemetry sets up structured logging and Prometheus metrics for
// an optimization run.
package telemetry

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// LoggerConfig controls the base logger's format and verbosity.
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Pretty bool
}

// NewLogger builds a zerolog.Logger per cfg, writing to stderr. Pretty
// enables the console writer for local runs; production runs log newline
// JSON.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer = os.Stderr
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	if cfg.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: writer})
	}

	log.Logger = logger
	return logger
}
