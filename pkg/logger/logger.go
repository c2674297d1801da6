package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// Logger wraps a zap logger and adds context-aware helpers.
type Logger struct {
	*zap.Logger
	ctxLogger *zap.Logger
}

// New builds a logger for the given level ("debug", "info", "warn", "error")
// and encoding ("json" or "console"). Output goes to stdout unless
// outputPaths are given.
func New(level, encoding string, outputPaths ...string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch encoding {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
		encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log encoding %q", encoding)
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = encoding
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if len(outputPaths) > 0 {
		cfg.OutputPaths = outputPaths
		cfg.ErrorOutputPaths = outputPaths
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return wrap(zl), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

// FromZap wraps an existing zap logger.
func FromZap(zl *zap.Logger) *Logger {
	return wrap(zl)
}

func wrap(zl *zap.Logger) *Logger {
	return &Logger{
		Logger:    zl,
		ctxLogger: zl.WithOptions(zap.AddCallerSkip(1)),
	}
}

// WithRequestID stores a request id that the *Context methods attach to every entry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := RequestID(ctx); id != "" {
		return append(fields, zap.String("request_id", id))
	}
	return fields
}

// DebugContext logs at debug level with the request id from ctx.
func (l *Logger) DebugContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Debug(msg, withContext(ctx, fields)...)
}

// InfoContext logs at info level with the request id from ctx.
func (l *Logger) InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Info(msg, withContext(ctx, fields)...)
}

// WarnContext logs at warn level with the request id from ctx.
func (l *Logger) WarnContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Warn(msg, withContext(ctx, fields)...)
}

// ErrorContext logs at error level with the request id from ctx.
func (l *Logger) ErrorContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Error(msg, withContext(ctx, fields)...)
}

// Field creates a field of any type.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// StringField creates a string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates an int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}
