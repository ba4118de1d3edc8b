package logger

import (
	"go.uber.org/zap"
)

// CronLogger adapts Logger to the cron.Logger interface.
type CronLogger struct {
	logger *Logger
}

func (l *Logger) Cron() *CronLogger {
	return &CronLogger{logger: l}
}

func (c *CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Logger.Sugar().Debugw(msg, keysAndValues...)
}

func (c *CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Logger.Sugar().Errorw(msg, append(keysAndValues, zap.Error(err))...)
}
