package logger

import (
	"io"

	corelogger "github.com/kilianp07/hostelmeal/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Infow(string, map[string]any)  {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component. The output format is
// selected by the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewWithWriter returns a Logger for the component that writes to w instead
// of the configured output. CLI commands use it to keep logs off stdout.
func NewWithWriter(w io.Writer, component string) Logger {
	return newZerologLogger(w, component)
}
