package logger

import (
	"os"

	"github.com/samvad-hq/dogceo-go/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface shared across packages.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Init initializes the package-level zap SugaredLogger using settings from config.
func Init(cfg *config.Config) (Logger, error) {
	S = newSugar(parseLevel(cfg.LogLevel))
	return &zapLogger{s: S}, nil
}

// parseLevel maps a config string onto a zap level, defaulting to info.
func parseLevel(raw string) zapcore.Level {
	switch raw {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newSugar(level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// zapLogger logs each object as a single structured field named key.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z *zapLogger) InfoObj(msg, key string, obj interface{}) {
	z.s.Desugar().Info(msg, zap.Any(key, obj))
}

func (z *zapLogger) DebugObj(msg, key string, obj interface{}) {
	z.s.Desugar().Debug(msg, zap.Any(key, obj))
}

func (z *zapLogger) WarnObj(msg, key string, obj interface{}) {
	z.s.Desugar().Warn(msg, zap.Any(key, obj))
}

func (z *zapLogger) ErrorObj(msg, key string, obj interface{}) {
	z.s.Desugar().Error(msg, zap.Any(key, obj))
}

// NopLogger discards everything.
type NopLogger struct{}

func (*NopLogger) InfoObj(string, string, interface{})  {}
func (*NopLogger) DebugObj(string, string, interface{}) {}
func (*NopLogger) WarnObj(string, string, interface{})  {}
func (*NopLogger) ErrorObj(string, string, interface{}) {}

// Minimal object logging helpers -------------------------------------------------
// These log through the package-level logger and are no-ops before Init.
func InfoObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Info(msg, zap.Any(key, obj))
}

func WarnObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Warn(msg, zap.Any(key, obj))
}

func ErrorObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Error(msg, zap.Any(key, obj))
}
