// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string

	// Format is the output format: json or console.
	// Default: json
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output.
	Timestamp bool

	// Output is the writer for log output.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// global holds the process logger. Readers never block writers.
var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging works before an explicit Init() call
func init() {
	Init(DefaultConfig())
}

// Init builds the global logger from cfg. Calling it again reconfigures
// the logger for all subsequent calls.
func Init(cfg Config) {
	l := build(cfg)
	global.Store(&l)
}

// build creates a logger from cfg, filling empty fields from DefaultConfig.
func build(cfg Config) zerolog.Logger {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var out io.Writer = cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// levels maps accepted level names to zerolog levels.
var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"disabled": zerolog.Disabled,
}

// parseLevel converts a level name to a zerolog.Level. Unknown names
// fall back to info.
func parseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

func current() *zerolog.Logger {
	return global.Load()
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *current()
}

// SetLogger replaces the global logger. Tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	global.Store(&l)
}

// With starts a child logger context from the global logger.
//
//	storeLogger := logging.With().Str("table", table).Logger()
func With() zerolog.Context {
	return current().With()
}

// WithComponent returns a child logger tagged with component.
//
//	logger := logging.WithComponent("breaker")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

// Debug starts a debug message.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info message.
//
//	logging.Info().Msg("Server starting")
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warning message.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error message.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal message. The process exits after Msg.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err starts an error-level message carrying err.
//
//	logging.Err(err).Msg("Fetch failed")
func Err(err error) *zerolog.Event { return current().Err(err) }

// NewTestLogger creates a JSON logger writing to w.
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
