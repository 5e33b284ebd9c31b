// Package logger builds charmbracelet/log loggers. The terminal belongs to the
// UI, so loggers write to a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// Open appends to path and returns a logger and the file to close. An
// empty path discards all output.
func Open(path, prefix, level string) (*log.Logger, io.Closer, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		return New(io.Discard, prefix, lvl), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	return New(f, prefix, lvl), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
