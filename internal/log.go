package internal

import (
	"go.uber.org/zap"
)

type Logging interface {
	Printf(format string, v ...interface{})
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogging adapts a zap logger to Logging, messages are logged at info level.
func NewZapLogging(z *zap.Logger) Logging {
	return &zapLogger{
		sugar: z.WithOptions(zap.AddCallerSkip(1)).Named("go-lease").Sugar(),
	}
}

func (l *zapLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func newDefaultLogger() Logging {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return NewZapLogging(z)
}

var l = newDefaultLogger()

func SetLogger(logger Logging) {
	l = logger
}

func GetLogger() Logging {
	return l
}
