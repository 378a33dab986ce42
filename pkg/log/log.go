package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields carries structured context attached to log entries.
type Fields map[string]interface{}

// Logger defines the logging interface used throughout the library.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	WithFields(fields Fields) Logger
}

// Format selects the log line encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures a logger created with New.
type Options struct {
	// Level is a logrus level name ("debug", "info", "warn", ...). Defaults to info.
	Level string
	// Format is FormatText or FormatJSON. Defaults to FormatText.
	Format Format
	// Output defaults to os.Stderr so converted values on stdout stay clean.
	Output io.Writer
}

// DefaultLogger implements Logger on top of logrus.
type DefaultLogger struct {
	entry *logrus.Entry
}

// New creates a logger from options.
func New(opts Options) (*DefaultLogger, error) {
	logger := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	switch opts.Format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (must be 'text' or 'json')", opts.Format)
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = lvl
	}
	logger.SetLevel(level)

	return &DefaultLogger{entry: logrus.NewEntry(logger)}, nil
}

// NewNop creates a logger that discards everything.
func NewNop() *DefaultLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return &DefaultLogger{entry: logrus.NewEntry(logger)}
}

func (l *DefaultLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *DefaultLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *DefaultLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *DefaultLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithFields returns a logger that adds fields to every entry.
func (l *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
