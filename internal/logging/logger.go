package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration value such as "debug" or "WARN" to a
// LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Fatal(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      LogLevel
	Format     string // "json" or "text"
	Output     io.Writer
	TimeFormat string
	Component  string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:      LevelInfo,
		Format:     "text",
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// MayuraLogger implements Logger on top of zerolog.
type MayuraLogger struct {
	base zerolog.Logger
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *MayuraLogger {
	if config == nil {
		config = DefaultConfig()
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Format != "json" {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = config.TimeFormat
		if console.TimeFormat == "" {
			console.TimeFormat = time.RFC3339
		}
		out = console
	}

	ctx := zerolog.New(out).Level(config.Level.zerolog()).With().Timestamp()
	if config.Component != "" {
		ctx = ctx.Str("component", config.Component)
	}
	return &MayuraLogger{base: ctx.Logger()}
}

// NewNop returns a logger that discards everything. Useful in tests and as a
// default for optional logger parameters.
func NewNop() *MayuraLogger {
	return &MayuraLogger{base: zerolog.Nop()}
}

// Debug logs a debug message
func (l *MayuraLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Debug(), nil, msg, fields)
}

// Info logs an info message
func (l *MayuraLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Info(), nil, msg, fields)
}

// Warn logs a warning message
func (l *MayuraLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.write(l.base.Warn(), err, msg, fields)
}

// Error logs an error message
func (l *MayuraLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.write(l.base.Error(), err, msg, fields)
}

// Fatal logs at fatal level. It does not exit; the caller decides how to
// stop.
func (l *MayuraLogger) Fatal(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.write(l.base.WithLevel(zerolog.FatalLevel), err, msg, fields)
}

// With creates a new logger with additional fields
func (l *MayuraLogger) With(fields ...interface{}) Logger {
	ctx := l.base.With()
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			ctx = ctx.Interface(key, fields[i+1])
		}
	}
	return &MayuraLogger{base: ctx.Logger()}
}

// WithComponent creates a new logger with component context
func (l *MayuraLogger) WithComponent(component string) Logger {
	return &MayuraLogger{base: l.base.With().Str("component", component).Logger()}
}

// write attaches err and the key/value pairs in fields. A trailing key
// without a value is logged under "extra".
func (l *MayuraLogger) write(ev *zerolog.Event, err error, msg string, fields []interface{}) {
	if ev == nil {
		return
	}
	if err != nil {
		ev = ev.Err(err)
	}
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			ev = ev.Interface("extra", fields[i])
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(msg)
}

// MultiLogger fans out to several loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that writes to multiple destinations
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	for _, l := range m.loggers {
		l.Debug(ctx, msg, fields...)
	}
}

func (m *MultiLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	for _, l := range m.loggers {
		l.Info(ctx, msg, fields...)
	}
}

func (m *MultiLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	for _, l := range m.loggers {
		l.Warn(ctx, err, msg, fields...)
	}
}

func (m *MultiLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	for _, l := range m.loggers {
		l.Error(ctx, err, msg, fields...)
	}
}

func (m *MultiLogger) Fatal(ctx context.Context, err error, msg string, fields ...interface{}) {
	for _, l := range m.loggers {
		l.Fatal(ctx, err, msg, fields...)
	}
}

func (m *MultiLogger) With(fields ...interface{}) Logger {
	out := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		out[i] = l.With(fields...)
	}
	return &MultiLogger{loggers: out}
}

func (m *MultiLogger) WithComponent(component string) Logger {
	out := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		out[i] = l.WithComponent(component)
	}
	return &MultiLogger{loggers: out}
}
