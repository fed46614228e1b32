package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Logger is the context-first logger used outside the transport layer.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	otel *otelzap.Logger
}

var (
	global *otelzap.Logger
	once   sync.Once
)

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init installs l as the process wide logger.
func Init(l *zap.Logger) {
	global = otelzap.New(l, otelzap.WithMinLevel(zap.DebugLevel))
	otelzap.ReplaceGlobals(global)
}

// Setup returns the otelzap logger, initializing it on first use.
func Setup() *otelzap.Logger {
	once.Do(func() {
		if global == nil {
			Init(SetupLogger())
		}
	})
	return global
}

func GetLogger() Logger {
	return &logger{otel: Setup()}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Debug(msg, toZapFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Error(msg, toZapFields(fields)...)
}

func toZapFields(fields []any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
