// Package logger provides charmbracelet/log loggers preconfigured for arena.
//
// Loggers write to stderr: stdout belongs to the IPC protocol and the TUI.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// New creates a new default charm log that respects the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter creates a charm log writing to w.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// ToStateFile redirects the global logger to $XDG_STATE_HOME/arena/arena.log.
// The TUI owns the terminal, so operator logs go there instead of stderr.
func ToStateFile(appName string) (string, io.Closer, error) {
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", nil, fmt.Errorf("logger: resolve state path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", nil, fmt.Errorf("logger: open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return path, f, nil
}
