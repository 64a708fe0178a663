// Package log configures the zerolog logger used by the enum-mapper CLI.
// Library packages never log on their own; they accept a zerolog.Logger.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the CLI logger.
type Config struct {
	Level   string    // "debug", "info", ...; invalid or empty means info
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human-readable output instead of JSON
}

// New builds a logger from cfg.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
