package onesignal

import (
	"context"
	"fmt"
	"log/slog"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. It is also handed to the underlying resty client. Implement this
// interface to integrate with your logging library and supply the
// implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// SlogLogger adapts a [slog.Logger] to [RequestLogger].
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a [RequestLogger] writing to logger, or to
// [slog.Default] when logger is nil.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger.With("component", "onesignal")}
}

func (l *SlogLogger) Errorf(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *SlogLogger) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *SlogLogger) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *SlogLogger) log(level slog.Level, format string, v ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(format, v...))
}
