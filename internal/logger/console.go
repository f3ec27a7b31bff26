package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Messages below the configured level are discarded. Level tags are
// colorized when writing to a terminal.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	color bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given
// minimum level. A nil writer silently discards all messages. Color is
// enabled only for os.Stdout/os.Stderr with TTY support (the color
// library's detection also honours NO_COLOR).
func NewConsoleLogger(w io.Writer, level Level) *ConsoleLogger {
	useColor := (w == os.Stdout || w == os.Stderr) && !color.NoColor

	return &ConsoleLogger{
		w:     w,
		level: level,
		color: useColor,
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) { cl.log(LevelInfo, message) }

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) { cl.log(LevelWarn, message) }

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

func (cl *ConsoleLogger) log(level Level, message string) {
	if cl.w == nil || level < cl.level {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	tag := level.String()
	if cl.color {
		tag = levelColor(level).Sprint(tag)
	}

	fmt.Fprintf(cl.w, "[%s] [%s] %s\n", time.Now().Format("15:04:05"), tag, message)
}

// levelColor maps a level to the color used for its tag.
func levelColor(level Level) *color.Color {
	switch level {
	case LevelTrace:
		return color.New(color.FgHiBlack)
	case LevelDebug:
		return color.New(color.FgCyan)
	case LevelInfo:
		return color.New(color.FgBlue)
	case LevelWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
