package logutil

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logger  = newLogger(os.Stderr)
	verbose bool
	mu      sync.RWMutex
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{Prefix: "socialhub", ReportTimestamp: true, Level: log.InfoLevel})
}

// SetVerbose adjusts the global logging level.
func SetVerbose(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enable
	if enable {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// Verbose reports whether verbose logging is enabled.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a structured debug message when verbose logging is enabled.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs a structured informational message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Error logs a structured error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Debugf logs a debug message when verbose logging is enabled.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
