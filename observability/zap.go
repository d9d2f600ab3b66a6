package observability

import "go.uber.org/zap"

// ZapLogger adapts a zap.Logger to the library Logger interface.
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps the provided zap logger. A nil logger yields a no-op
// implementation so callers can pass through optional configuration.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return &ZapLogger{l: l}
}

func (z *ZapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, zapFields(fields)...) }
func (z *ZapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, zapFields(fields)...) }
func (z *ZapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, zapFields(fields)...) }
func (z *ZapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, zapFields(fields)...) }

func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{l: z.l.With(zapFields(fields)...)}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value().(error); ok {
			out = append(out, zap.NamedError(f.Key(), err))
			continue
		}
		out = append(out, zap.Any(f.Key(), f.Value()))
	}
	return out
}
