// Package log provides leveled logging for the fios-stats application.
//
// Log output goes to stderr so that fetched counters printed on stdout stay
// machine-readable. The level defaults to info and can be raised to debug
// with SetVerbose or any logrus level name via SetLevel.
package log

import (
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(colorable.NewColorableStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	if v {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// SetLevel sets the log level by name (debug, info, warn, error). Unknown
// names keep the info level.
func SetLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.Warnf("Unknown log level %q, using info", name)
		return
	}
	logger.SetLevel(level)
}

// Debugf logs a debug message.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf logs an error message and exits the program with a non-zero code.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
