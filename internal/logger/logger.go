// Package logger builds the zerolog logger shared by the application.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const envLocal = "local"

// New returns a logger writing to stdout. Local environments get a
// human-readable console writer, everything else JSON.
func New(env, level string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env == envLocal {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

// NewWithWriter returns a logger writing to w. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
