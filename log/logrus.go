package log

import (
	"time"

	lg "github.com/sirupsen/logrus"
	"github.com/urandom/feedkeeper/config"
)

type logrus struct {
	*lg.Logger
}

var logrusLevels = map[level]lg.Level{
	errorLevel: lg.ErrorLevel,
	infoLevel:  lg.InfoLevel,
	debugLevel: lg.DebugLevel,
}

// WithLogrus is the server logger. Print lines are logged at error level.
func WithLogrus(cfg config.Log) Log {
	logger := lg.New()

	if cfg.Converted.Writer != nil {
		logger.Out = cfg.Converted.Writer
	}

	if cfg.Formatter == "json" {
		logger.Formatter = &lg.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	} else {
		logger.Formatter = &lg.TextFormatter{FullTimestamp: true}
	}

	logger.Level = logrusLevels[parseLevel(cfg.Level)]

	return logrus{Logger: logger}
}

func (l logrus) Print(args ...interface{}) {
	l.Logger.Error(args...)
}

func (l logrus) Printf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l logrus) Println(args ...interface{}) {
	l.Logger.Errorln(args...)
}
