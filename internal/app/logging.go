package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LogLevel is the minimum severity a Logger writes.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses a level name. Unknown names mean info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level LogLevel
	// Output defaults to os.Stderr.
	Output io.Writer
	// Prefix is attached to every record as the app attribute.
	Prefix string
}

// DefaultLoggerConfig logs info and above to stderr.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LogLevelInfo, Output: os.Stderr, Prefix: "termkit"}
}

// Logger writes structured records through log/slog. Loggers derived with
// WithField or WithComponent share their parent's level.
type Logger struct {
	level *slog.LevelVar
	base  *slog.Logger
}

// NewLogger creates a text logger.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	lv := new(slog.LevelVar)
	lv.Set(cfg.Level.slog())
	base := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: lv}))
	if cfg.Prefix != "" {
		base = base.With("app", cfg.Prefix)
	}
	return &Logger{level: lv, base: base}
}

// NullLogger discards everything.
var NullLogger = &Logger{level: new(slog.LevelVar), base: slog.New(slog.DiscardHandler)}

// WithField returns a logger that adds key=value to every record.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{level: l.level, base: l.base.With(key, value)}
}

// WithFields returns a logger that adds every entry of fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, 2*len(fields))
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{level: l.level, base: l.base.With(args...)}
}

// WithComponent tags records with the subsystem name.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Set(level.slog())
}

// Slog returns the underlying slog logger for packages that take one.
func (l *Logger) Slog() *slog.Logger { return l.base }

// Debug logs msg with key/value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }

// Info logs msg with key/value pairs.
func (l *Logger) Info(msg string, args ...any) { l.base.Info(msg, args...) }

// Warn logs msg with key/value pairs.
func (l *Logger) Warn(msg string, args ...any) { l.base.Warn(msg, args...) }

// Error logs msg with key/value pairs.
func (l *Logger) Error(msg string, args ...any) { l.base.Error(msg, args...) }

// OpenLogOutput opens path for appending. An empty path discards output.
func OpenLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
