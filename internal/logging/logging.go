// Package logging configures zerolog for the CLI.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup configures zerolog for the process. Logs go to stderr so report
// output on stdout stays machine-readable.
func Setup(verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
