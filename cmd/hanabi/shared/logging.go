// Package shared holds helpers common to the hanabi subcommands.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger on stderr
func SetupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
