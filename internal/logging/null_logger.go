package logging

import "github.com/vvka-141/fidsort/pkg/fidsort"

// NullLogger is a no-op logger that discards all log messages.
// Useful for testing and for the HTTP server when request logging is off.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

var _ fidsort.Logger = (*NullLogger)(nil)
