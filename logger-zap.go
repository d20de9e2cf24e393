//go:build !tinygo

package bitbang

import (
	"go.uber.org/zap"
)

// zapLogger forwards package messages to a zap logger.
type zapLogger struct {
	l *zap.Logger
}

// ZapLogger returns a Logger writing to l under the "bitbang" name.
// Pass the result to SetLogger.
func ZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l.Named("bitbang")}
}

func (z *zapLogger) Debug(msg string) { z.l.Debug(msg) }
func (z *zapLogger) Info(msg string)  { z.l.Info(msg) }
func (z *zapLogger) Warn(msg string)  { z.l.Warn(msg) }
func (z *zapLogger) Error(msg string) { z.l.Error(msg) }
