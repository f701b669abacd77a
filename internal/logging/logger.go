// Package logging wraps charmbracelet/log with the defaults a11ylint uses:
// diagnostics go to stderr without timestamps, user-facing listings go to
// the command's stdout.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // process-wide default, swapped by tests
var defaultLogger atomic.Pointer[log.Logger]

// ParseLevel maps a level name to a log.Level. Unknown names yield info.
// "warning" is accepted as an alias of "warn".
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil || level == log.FatalLevel {
		return log.InfoLevel
	}
	return level
}

// New creates a diagnostic logger writing to w at the named level.
// A nil writer means stderr.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// NewInteractive creates an info-level logger for listings printed to the
// user, such as the rule catalogue or version banner.
func NewInteractive(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stdout
	}
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.InfoLevel)
	return logger
}

// Default returns the process default logger, creating it on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New(os.Stderr, "info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process default logger. A nil logger resets it.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
