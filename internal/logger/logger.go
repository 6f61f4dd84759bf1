// Package logger sets up the charmbracelet/log logger used across the app.
// The terminal belongs to the TUI, so output goes to a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// Setup opens path for appending, installs a logger writing to it as the
// package default and returns a function that closes the file. An empty
// path discards all log output.
func Setup(path, level string) (func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		log.SetDefault(New(io.Discard, "typeahead", lvl))
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetDefault(New(io.Discard, "typeahead", lvl))
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(New(f, "typeahead", lvl))
	return f.Close, nil
}
