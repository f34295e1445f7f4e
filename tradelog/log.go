// Package tradelog provides the structured logging sink used across the
// platform, built on go.uber.org/zap. Its Logger satisfies the clock
// package's consumed Logger interface, so a Clock can be handed a
// *tradelog.Logger directly.
package tradelog

import "go.uber.org/zap"

// Logger wraps a *zap.Logger. The zero value is not usable; construct one
// with New.
type Logger struct {
	z *zap.Logger
}

// New builds a Logger at the given level ("debug", "info", "warn", or
// "error"; anything else falls back to "info"), logging to stderr in
// console format.
func New(level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.z.Info(msg) }

// Warning logs msg at warn level.
func (l *Logger) Warning(msg string) { l.z.Warn(msg) }

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.z.Debug(msg) }

// Fields logs msg at info level with structured zap fields attached, for
// callers outside the clock package that want richer context than the
// plain-string Logger interface allows.
func (l *Logger) Fields(msg string, fields ...zap.Field) { l.z.Info(msg, fields...) }

// Sync flushes any buffered log entries. Callers should defer Sync during
// process shutdown.
func (l *Logger) Sync() error { return l.z.Sync() }
