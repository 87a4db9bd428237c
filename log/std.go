package log

import (
	"log"

	"github.com/urandom/feedkeeper/config"
)

type stdLogger struct {
	*log.Logger
	level level
}

// WithStd writes plain lines through a stdlib logger. Lines above the
// configured level are discarded.
func WithStd(cfg config.Log) Log {
	return stdLogger{
		Logger: log.New(cfg.Converted.Writer, cfg.Converted.Prefix, log.LstdFlags),
		level:  parseLevel(cfg.Level),
	}
}

func (st stdLogger) Info(v ...interface{}) {
	if st.level >= infoLevel {
		st.Print(v...)
	}
}

func (st stdLogger) Infof(format string, v ...interface{}) {
	if st.level >= infoLevel {
		st.Printf(format, v...)
	}
}

func (st stdLogger) Infoln(v ...interface{}) {
	if st.level >= infoLevel {
		st.Println(v...)
	}
}

func (st stdLogger) Debug(v ...interface{}) {
	if st.level >= debugLevel {
		st.Print(v...)
	}
}

func (st stdLogger) Debugf(format string, v ...interface{}) {
	if st.level >= debugLevel {
		st.Printf(format, v...)
	}
}

func (st stdLogger) Debugln(v ...interface{}) {
	if st.level >= debugLevel {
		st.Println(v...)
	}
}
