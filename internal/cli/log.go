package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const debugLevel = zerolog.DebugLevel

// logger writes diagnostics to stderr. Stdout carries command output only.
var logger = newLogger(os.Stderr, zerolog.WarnLevel)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// setupLogging replaces the package logger for the current run.
func setupLogging(w io.Writer, level zerolog.Level) {
	logger = newLogger(w, level)
}

// VerboseLog prints a debug message to stderr when verbose output is
// enabled (--verbose or log_level: debug).
func VerboseLog(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}
