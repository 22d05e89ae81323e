// File: logger.go
// Title: Core Logger Implementation
// Description: Structured logger with persistent context fields, pluggable formatters
//              and integration with the etkit error type. With* methods return
//              modified copies so a configured logger can be shared safely.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with structured logging

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	etkerror "github.com/msto63/etkit/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	format    Format
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	correlationID string

	enableCaller bool

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger writing auto-formatted entries to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatAuto,
		Output: os.Stderr,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		level:         config.Level,
		format:        config.Format,
		formatter:     NewFormatter(config.Format, output),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
	}
}

// WithLevel returns a copy with the minimum log level set
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithField returns a copy that adds a field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy that adds fields to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID returns a copy tagging all entries with the correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// WithCaller returns a copy that records the calling function
func (l *Logger) WithCaller() *Logger {
	clone := l.clone()
	clone.enableCaller = true
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// LogError logs an error at a level derived from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var etkErr *etkerror.Error
	if !errors.As(err, &etkErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     etkErr.Code(),
		"error_severity": etkErr.Severity().String(),
	}
	if op := etkErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range etkErr.Details() {
		fields["error_"+k] = v
	}

	switch etkErr.Severity() {
	case etkerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case etkerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := callerInfo(3); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if formatted, formatErr := formatter.Format(entry); formatErr == nil {
		_, _ = output.Write(formatted)
	}
}

// callerInfo skips callerInfo, log and the public method
func callerInfo(skip int) (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}

	return function, file, line, true
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:         l.level,
		format:        l.format,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		correlationID: l.correlationID,
		enableCaller:  l.enableCaller,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger instance
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
