package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/you-humble/fieldservice/platform/ctxutil"
)

type logger struct {
	zl *zap.Logger
}

var (
	mu           sync.RWMutex
	globalLogger = &logger{zl: zap.NewNop()}
	dynamicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// Init builds the process-wide logger. Level is one of debug, info, warn, error.
func Init(levelStr string, asJSON bool) error {
	if err := dynamicLevel.UnmarshalText([]byte(levelStr)); err != nil {
		return err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if asJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), dynamicLevel)

	mu.Lock()
	globalLogger = &logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

// SetNopLogger silences the global logger, used by tests.
func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zl: zap.NewNop()}
	mu.Unlock()
}

func SetLevel(levelStr string) error {
	return dynamicLevel.UnmarshalText([]byte(levelStr))
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()

	return globalLogger
}

func Sync() error {
	return L().zl.Sync()
}

func With(fields ...Field) *logger {
	return L().With(fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, append(contextFields(ctx), fields...)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, append(contextFields(ctx), fields...)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, append(contextFields(ctx), fields...)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, append(contextFields(ctx), fields...)...)
}

func contextFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if id, ok := ctxutil.TechnicianIDFromCtx(ctx); ok {
		fields = append(fields, zap.String("technician_id", id.String()))
	}

	return fields
}

// NoopLogger satisfies the small Info/Error logger interfaces used by
// platform helpers when no output is wanted.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...zap.Field)  {}
func (NoopLogger) Error(context.Context, string, ...zap.Field) {}
