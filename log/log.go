// Package log provides leveled logging for askweb on top of kataras/golog.
package log

import (
	"io"

	"github.com/kataras/golog"
)

// Logger is the minimal logging contract used across askweb.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// GologLogger implements Logger using kataras/golog.
type GologLogger struct {
	logger *golog.Logger
}

var _ Logger = (*GologLogger)(nil)

// NewGologLogger wraps an existing golog.Logger.
func NewGologLogger(logger *golog.Logger) *GologLogger {
	return &GologLogger{logger: logger}
}

// Debug logs a debug message.
func (l *GologLogger) Debug(format string, v ...any) {
	l.logger.Debugf(format, v...)
}

// Info logs an informational message.
func (l *GologLogger) Info(format string, v ...any) {
	l.logger.Infof(format, v...)
}

// Warn logs a warning message.
func (l *GologLogger) Warn(format string, v ...any) {
	l.logger.Warnf(format, v...)
}

// Error logs an error message.
func (l *GologLogger) Error(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

// SetLevel sets the level from a golog level string
// ("debug", "info", "warn", "error", "disable").
func (l *GologLogger) SetLevel(level string) {
	l.logger.SetLevel(level)
}

// SetOutput redirects log output, mainly for tests.
func (l *GologLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// Debug does nothing.
func (NoOpLogger) Debug(format string, v ...any) {}

// Info does nothing.
func (NoOpLogger) Info(format string, v ...any) {}

// Warn does nothing.
func (NoOpLogger) Warn(format string, v ...any) {}

// Error does nothing.
func (NoOpLogger) Error(format string, v ...any) {}

var defaultLogger Logger = newDefault()

func newDefault() *GologLogger {
	gl := golog.New()
	gl.SetLevel("info")
	gl.SetTimeFormat("2006/01/02 15:04:05")
	return &GologLogger{logger: gl}
}

// SetDefaultLogger replaces the package-level logger.
func SetDefaultLogger(logger Logger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the package-level logger.
func GetDefaultLogger() Logger {
	return defaultLogger
}

// SetLevel sets the level of the package-level logger when it is golog-backed.
func SetLevel(level string) {
	if gl, ok := defaultLogger.(*GologLogger); ok {
		gl.SetLevel(level)
	}
}

// Debug logs a debug message using the package-level logger.
func Debug(format string, v ...any) {
	defaultLogger.Debug(format, v...)
}

// Info logs an informational message using the package-level logger.
func Info(format string, v ...any) {
	defaultLogger.Info(format, v...)
}

// Warn logs a warning message using the package-level logger.
func Warn(format string, v ...any) {
	defaultLogger.Warn(format, v...)
}

// Error logs an error message using the package-level logger.
func Error(format string, v ...any) {
	defaultLogger.Error(format, v...)
}
