// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/jackc/pgmodel"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgmodel.LogLevel, msg string, data map[string]interface{}) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case pgmodel.LogLevelTrace:
		logger.WithField("PGMODEL_LOG_LEVEL", level).Debug(msg)
	case pgmodel.LogLevelDebug:
		logger.Debug(msg)
	case pgmodel.LogLevelInfo:
		logger.Info(msg)
	case pgmodel.LogLevelWarn:
		logger.Warn(msg)
	case pgmodel.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_PGMODEL_LOG_LEVEL", level).Error(msg)
	}
}
