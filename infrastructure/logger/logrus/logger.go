// ABOUTME: Logrus-backed logger implementation with structured JSON output
// ABOUTME: Adapts logrus levels and fields to the core Logger interface

package logrus

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a logrus logger writing JSON to the given output.
// Unknown levels fall back to info.
func NewLogger(out io.Writer, level string) *Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)

	return &Logger{logger: logger}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
