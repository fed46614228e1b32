package messagestream

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

type zapLoggerAdapter struct {
	log    *zap.Logger
	fields watermill.LogFields
}

// NewZapLoggerAdapter lets watermill write through the service logger.
func NewZapLoggerAdapter(log *zap.Logger) watermill.LoggerAdapter {
	return &zapLoggerAdapter{log: log}
}

func (z *zapLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.log.Error(msg, append(z.zapFields(fields), zap.Error(err))...)
}

func (z *zapLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	z.log.Info(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapLoggerAdapter{log: z.log, fields: z.fields.Add(fields)}
}

func (z *zapLoggerAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	all := z.fields.Add(fields)
	out := make([]zap.Field, 0, len(all))
	for k, v := range all {
		out = append(out, zap.Any(k, v))
	}
	return out
}
