package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes JSON logs to the configured file. Both frontends own the
// screen, so there is never a console core. No file means no logging.
func newLogger(cfg *Config) *zap.Logger {
	if cfg.LogFile == "" {
		return zap.NewNop()
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("forcevec")
}
