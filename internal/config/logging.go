package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the level named by
// ROCKFALL_LOG_LEVEL (info if unset or unknown).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("ROCKFALL_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// OpenLogFile opens the file named by ROCKFALL_LOG for appending.
// It returns io.Discard and a no-op closer when the variable is unset, since
// terminal sessions cannot share stdout/stderr with log output.
func OpenLogFile() (io.Writer, func() error, error) {
	path := GetEnv("ROCKFALL_LOG", "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
