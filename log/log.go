// Package log is the logging facade handed to the stores, repos and
// handlers of feedkeeper.
package log

// Log is the logger every package receives at construction time.
type Log interface {
	// Print and its variants report failures.
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})

	// Info reports changes in the service state, such as connections and
	// created or deleted feeds.
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Infoln(v ...interface{})

	// Debug traces single repository and index calls.
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Debugln(v ...interface{})
}

type level int

const (
	errorLevel level = iota
	infoLevel
	debugLevel
)

// parseLevel maps the configured level name, defaulting to info.
func parseLevel(name string) level {
	switch name {
	case "error":
		return errorLevel
	case "debug":
		return debugLevel
	default:
		return infoLevel
	}
}
