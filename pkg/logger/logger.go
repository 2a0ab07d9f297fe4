package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps the printf-style API used across the services and writes through zap.
type Logger struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// New returns a production (JSON) logger.
func New() *Logger {
	return NewForEnv("production")
}

// NewForEnv returns a console logger for "development" and a JSON logger otherwise.
func NewForEnv(env string) *Logger {
	var (
		base *zap.Logger
		err  error
	)
	if env == "development" {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		base = zap.NewNop()
	}
	return fromZap(base)
}

// NewWithCore builds a logger over an arbitrary core, mainly for tests.
func NewWithCore(core zapcore.Core) *Logger {
	return fromZap(zap.New(core))
}

func fromZap(base *zap.Logger) *Logger {
	base = base.WithOptions(zap.AddCallerSkip(1))
	return &Logger{sugar: base.Sugar(), base: base}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// With returns a child logger carrying the given key/value pairs on every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	sugar := l.sugar.With(keysAndValues...)
	return &Logger{sugar: sugar, base: sugar.Desugar()}
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}
