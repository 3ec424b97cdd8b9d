package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	traceIDKey   ctxKey = "trace_id"
	requestIDKey ctxKey = "request_id"
)

// Interface is the subset of logging the rest of the module depends on.
type Interface interface {
	Debugw(msg string, kv ...any)
	Infow(msg string, kv ...any)
	Warnw(msg string, kv ...any)
	Errorw(msg string, kv ...any)

	DebugwCtx(ctx context.Context, msg string, kv ...any)
	WarnwCtx(ctx context.Context, msg string, kv ...any)

	With(kv ...any) Interface
	SafeSync()
}

type Logger struct {
	*zap.SugaredLogger
}

var _ Interface = (*Logger)(nil)

func New(name, env string) (*Logger, error) {
	cfg, withCaller := buildConfig(env)

	z, err := cfg.Build(zap.WithCaller(withCaller), zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("cannot init zap logger: %w", err)
	}
	return &Logger{SugaredLogger: z.Named(name).Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func buildConfig(env string) (zap.Config, bool) {
	var cfg zap.Config
	withCaller := false

	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	case "debug":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		withCaller = true
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.NameKey = "logger"
	cfg.EncoderConfig.CallerKey = zapcore.OmitKey
	if withCaller {
		cfg.EncoderConfig.CallerKey = "caller"
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout carries command output; logs go to stderr.
	cfg.OutputPaths = []string{"stderr"}

	return cfg, withCaller
}

func (l *Logger) With(kv ...any) Interface {
	return &Logger{SugaredLogger: l.SugaredLogger.With(kv...)}
}

func (l *Logger) SafeSync() {
	if l == nil {
		return
	}
	if err := l.Desugar().Sync(); err != nil && !isIgnorableSyncError(err) {
		l.Errorf("log sync error: %v", err)
	}
}

func isIgnorableSyncError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "invalid argument") ||
		strings.Contains(s, "inappropriate ioctl for device") ||
		strings.Contains(s, "bad file descriptor")
}

func (l *Logger) DebugwCtx(ctx context.Context, msg string, kv ...any) {
	l.SugaredLogger.Debugw(msg, appendContextFields(ctx, kv...)...)
}

func (l *Logger) InfowCtx(ctx context.Context, msg string, kv ...any) {
	l.SugaredLogger.Infow(msg, appendContextFields(ctx, kv...)...)
}

func (l *Logger) WarnwCtx(ctx context.Context, msg string, kv ...any) {
	l.SugaredLogger.Warnw(msg, appendContextFields(ctx, kv...)...)
}

func appendContextFields(ctx context.Context, kv ...any) []any {
	if ctx == nil {
		return kv
	}
	if s, ok := ctx.Value(traceIDKey).(string); ok && s != "" {
		kv = append(kv, "trace_id", s)
	}
	if s, ok := ctx.Value(requestIDKey).(string); ok && s != "" {
		kv = append(kv, "request_id", s)
	}
	return kv
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceIDKey, traceID)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}
