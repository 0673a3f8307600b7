// Package zaplog adapts go.uber.org/zap to the domain Logger interface.
// This is in external-adapters to isolate the external dependency.
package zaplog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ochairo/fwsize/internal/domain/interfaces"
)

// Logger implements interfaces.Logger on top of a zap.Logger.
type Logger struct {
	z *zap.Logger
}

// New creates a console logger at the given level ("debug", "info",
// "warn", "error"). Output goes to stderr so it never mixes with the
// report on stdout.
func New(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	z, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &Logger{z: z}, nil
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.z.Debug(msg, convert(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.z.Info(msg, convert(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.z.Warn(msg, convert(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.z.Error(msg, convert(fields)...)
}

// Sync flushes buffered log entries; call it before process exit.
func (l *Logger) Sync() {
	//nolint:errcheck // stderr sync failures are not actionable
	_ = l.z.Sync()
}

func convert(fields []interfaces.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
