// =============================================================================
// IFSC Enricher - Logging
// =============================================================================
//
// Components log through the Logger interface so they can be handed a silent
// logger in tests. The concrete logger is charmbracelet/log writing to
// stderr; stdout is reserved for the interactive console.
//
// =============================================================================

package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the printf-style logging interface used by every component.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// charmLogger adapts *log.Logger to Logger.
type charmLogger struct {
	l *log.Logger
}

// New returns a Logger writing to w at the given level
// ("debug", "info", "warn" or "error"). Unknown levels fall back to info.
func New(w io.Writer, level string) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "ifsc-enricher",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	return &charmLogger{l: l}
}

func (c *charmLogger) Debug(msg string, args ...interface{}) { c.l.Debugf(msg, args...) }
func (c *charmLogger) Info(msg string, args ...interface{})  { c.l.Infof(msg, args...) }
func (c *charmLogger) Warn(msg string, args ...interface{})  { c.l.Warnf(msg, args...) }
func (c *charmLogger) Error(msg string, args ...interface{}) { c.l.Errorf(msg, args...) }

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
