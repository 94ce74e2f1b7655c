// Package logger holds the process-wide zerolog logger used by code that has
// no logger injected (repositories, error middleware, startup).
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config mirrors the logging section of the application config
type Config struct {
	Level  string // debug, info, warn or error
	Format string // json or pretty ("console" is accepted for pretty)
	Output io.Writer
}

var current = New(Config{Level: "info", Format: FormatPretty})

// New builds a logger without touching the package default
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case FormatPretty, "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Configure replaces the package default (and zerolog's global log.Logger)
// and returns it for injection.
func Configure(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	current = New(cfg)
	log.Logger = current
	return current
}

// parseLevel falls back to info for empty or unknown levels.
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug starts a debug level event on the default logger
func Debug() *zerolog.Event {
	return current.Debug()
}

// Info starts an info level event on the default logger
func Info() *zerolog.Event {
	return current.Info()
}

// Warn starts a warn level event on the default logger
func Warn() *zerolog.Event {
	return current.Warn()
}

// Error starts an error level event on the default logger
func Error() *zerolog.Event {
	return current.Error()
}
