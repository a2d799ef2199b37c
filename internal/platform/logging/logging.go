package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns the stderr diagnostics logger. Command output never goes here.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "bplog",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard is used by tests and callers that do not care about diagnostics.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
