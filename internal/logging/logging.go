// Package logging builds the diagnostic logger shared by the CLI
// commands. Diagnostics go to stderr so command output stays pipeable.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger tuned to the requested verbosity. Debug wins over
// verbose and adds caller reporting; the quiet default surfaces only
// warnings and errors.
func New(w io.Writer, verbose bool, debug bool) *log.Logger {
	opts := log.Options{
		Prefix: "orsh",
		Level:  log.WarnLevel,
	}
	switch {
	case debug:
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	case verbose:
		opts.Level = log.InfoLevel
	}
	return log.NewWithOptions(w, opts)
}
