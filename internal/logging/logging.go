package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the severity threshold of a logger.
type Level string

const (
	// LevelDebug logs buffer extensions, scanned blocks and constructions.
	LevelDebug Level = "debug"

	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type contextKey string

const loggerContextKey contextKey = "intseq_logger_context_key"

func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New builds a console logger writing to stderr.
func New(level Level) *zap.Logger {
	return NewWithWriter(level, os.Stderr)
}

func NewWithWriter(level Level, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level.zapLevel(),
	)
	return zap.New(core)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext returns the logger stored by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

// Sync flushes logger, ignoring the errors stderr reports on some platforms.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Debug("failed to sync logger", zap.Error(err))
	}
}
