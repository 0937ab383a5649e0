// Package log adapts logrus to the client's key/value Logger interface.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a logrus-backed implementation of types.Logger
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing text to stderr at the given level. An
// unknown level falls back to info.
func New(level string) *Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(parsed)

	return &Logger{entry: logrus.NewEntry(base)}
}

// WithComponent returns a logger tagged with a component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{entry: l.entry.WithField("component", component)}
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

// Info logs at info level
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Info(msg)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Warn(msg)
}

// Error logs at error level
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Error(msg)
}

// fields pairs up a key/value argument list. A trailing key with no value
// is kept with a nil value rather than dropped.
func fields(keysAndValues []interface{}) logrus.Fields {
	out := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(keysAndValues) {
			out[key] = keysAndValues[i+1]
		} else {
			out[key] = nil
		}
	}
	return out
}
