package checkrouteros

import (
	"os"
	"strings"

	"github.com/kdar/factorlog"
)

// define all available log levels.
const (
	// LogVerbosityNone disables logging.
	LogVerbosityNone = 0

	// LogVerbosityDefault sets the default log level.
	LogVerbosityDefault = 1

	// LogVerbosityDebug sets the debug log level.
	LogVerbosityDebug = 2

	// LogVerbosityTrace sets trace log level.
	LogVerbosityTrace = 3
)

var LogFormat = `[%{Severity}][%{ShortFile}:%{Line}] %{Message}`

// logs go to stderr, stdout is reserved for the plugin output line.
var log = factorlog.New(os.Stderr, factorlog.NewStdFormatter(LogFormat))

// SetLogLevel adjusts the verbosity, one of off/error/info/debug/trace.
func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "off":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("PANIC"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityNone)
	case "error":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("ERROR"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityDefault)
	case "info":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("INFO"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityDefault)
	case "debug":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("DEBUG"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityDebug)
	case "trace":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("TRACE"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityTrace)
	case "":
	default:
		log.Errorf("unknown log level: %s", level)
	}
}

// VerbosityLogLevel maps the counted -v flag to a log level.
func VerbosityLogLevel(verbose int) string {
	switch {
	case verbose <= 0:
		return "error"
	case verbose == 1:
		return "info"
	case verbose == 2:
		return "debug"
	}

	return "trace"
}

func init() {
	SetLogLevel("error")
}
