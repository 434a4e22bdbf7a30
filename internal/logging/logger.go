// Package logging provides component-scoped structured loggers backed by logrus.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields carries structured key/value pairs for a log entry.
type Fields map[string]interface{}

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
	return l
}

func parseLevel(s string) logrus.Level {
	if s == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(strings.ToLower(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// SetOutput redirects every logger created by this package.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetLevel changes the minimum level for every logger created by this package.
func SetLevel(level string) {
	base.SetLevel(parseLevel(level))
}

// LoggerV2 is a structured logger bound to a service component.
type LoggerV2 struct {
	entry *logrus.Entry
}

// NewLoggerV2 creates a logger that tags every entry with the component name.
func NewLoggerV2(component string) *LoggerV2 {
	return &LoggerV2{entry: base.WithField("component", component)}
}

func (l *LoggerV2) with(fields []Fields) *logrus.Entry {
	e := l.entry
	for _, f := range fields {
		e = e.WithFields(logrus.Fields(f))
	}
	return e
}

func (l *LoggerV2) Debug(msg string, fields ...Fields) { l.with(fields).Debug(msg) }
func (l *LoggerV2) Info(msg string, fields ...Fields)  { l.with(fields).Info(msg) }
func (l *LoggerV2) Warn(msg string, fields ...Fields)  { l.with(fields).Warn(msg) }
func (l *LoggerV2) Error(msg string, fields ...Fields) { l.with(fields).Error(msg) }

// Fatal logs and exits the process.
func (l *LoggerV2) Fatal(msg string, fields ...Fields) { l.with(fields).Fatal(msg) }

// Infof writes an unstructured info line.
func Infof(format string, args ...interface{}) {
	base.Infof(format, args...)
}

// Info writes a structured info line without a component tag.
func Info(msg string, fields ...Fields) {
	e := logrus.NewEntry(base)
	for _, f := range fields {
		e = e.WithFields(logrus.Fields(f))
	}
	e.Info(msg)
}
