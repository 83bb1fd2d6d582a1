package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the leveled, context-aware logging interface used across the
// service. All methods accept a context so request-scoped fields can be
// attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig controls how the zap logger is built.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide logger from config. It never fails: invalid
// settings fall back to a debug console logger.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, args ...any)  { l.sugar.Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)   { l.sugar.Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)   { l.sugar.Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any)  { l.sugar.Error(args...) }
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.sugar.DPanic(args...) }
func (l *zapLogger) Panic(ctx context.Context, args ...any)  { l.sugar.Panic(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any)  { l.sugar.Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.sugar.DPanicf(format, args...)
}

func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.sugar.Panicf(format, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
