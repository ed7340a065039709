package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// Options control how the console logger is built.
type Options struct {
	Level   string
	NoColor bool
	Out     io.Writer // defaults to os.Stderr
}

// New creates a console logger. Logs go to stderr so they never mix
// with report output on stdout.
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}

	l := zerolog.New(writer).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{l}
}

// parseLevel converts string to zerolog level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.Logger
}

// Global returns the global logger
func Global() *Logger {
	return &Logger{log.Logger}
}
