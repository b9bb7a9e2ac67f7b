package logger

import (
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything.
// Used in tests and when logging is disabled.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error {
	return nil
}
