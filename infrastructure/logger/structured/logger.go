// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Writes leveled diagnostics to stderr so stdout stays reserved for results

package structured

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger writing to stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// NewLoggerWithWriter creates a logger writing to w at the given level
func NewLoggerWithWriter(w io.Writer, level string) *Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// NewQuietLogger creates a logger that discards all output
func NewQuietLogger() *Logger {
	return NewLoggerWithWriter(io.Discard, "error")
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
