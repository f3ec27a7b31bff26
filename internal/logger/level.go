// Package logger provides leveled diagnostic logging for fortune runs.
//
// The console logger writes timestamped lines to a terminal writer with
// colorized level tags; the file logger writes a per-run log file. Both
// filter messages below their configured level and are safe for
// concurrent use.
package logger

import "strings"

// Level is the minimum severity a message needs to be written.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to its Level, case-insensitively.
// Empty or unknown names default to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// String returns the upper-case tag used in log lines.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger is implemented by all logging backends in this package.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Multi fans each message out to every underlying logger.
type Multi []Logger

// LogTrace implements Logger.
func (m Multi) LogTrace(message string) {
	for _, l := range m {
		l.LogTrace(message)
	}
}

// LogDebug implements Logger.
func (m Multi) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

// LogInfo implements Logger.
func (m Multi) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

// LogWarn implements Logger.
func (m Multi) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

// LogError implements Logger.
func (m Multi) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}
