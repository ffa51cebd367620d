package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a stderr logger for the requested format: "text" for a
// human-friendly console, anything else for JSON lines.
func Setup(format string) zerolog.Logger {
	return New(os.Stderr, format)
}

// New builds the same logger over w. Generated interchanges go to stdout, so
// the CLI never logs there.
func New(w io.Writer, format string) zerolog.Logger {
	if format == "text" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).With().Timestamp().Str("app", "dtalab").Logger()
}
