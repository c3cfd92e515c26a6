// Package logging wires up the zerolog logger a generation run uses for
// its diagnostics, following the same development/production console vs.
// structured-JSON split this corpus's EHR server uses.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger with a timestamp on every entry. When env
// is "development" it writes a human-readable console format; otherwise
// it writes structured JSON suitable for log aggregation.
func New(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
