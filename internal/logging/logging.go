// Package logging builds the shared leveled logger for the CLI and the
// HTTP server.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

func New(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
}
