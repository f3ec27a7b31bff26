package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileLogger writes run diagnostics to a timestamped log file in a log
// directory and maintains a latest.log symlink pointing at the most
// recent run. Every run is tagged with a unique run ID so interleaved
// logs from concurrent invocations can be told apart.
type FileLogger struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	level Level
	runID string
}

// NewFileLogger creates the log directory if needed, opens a
// run-YYYYMMDD-HHMMSS.log file and points latest.log at it.
func NewFileLogger(logDir string, level Level) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(logDir, fmt.Sprintf("run-%s.log", time.Now().Format("20060102-150405")))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	// Repoint latest.log at this run.
	symlink := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlink); err == nil {
		if err := os.Remove(symlink); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(path), symlink); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		file:  file,
		path:  path,
		level: level,
		runID: uuid.New().String(),
	}

	fmt.Fprintf(file, "=== fortune run %s ===\n", fl.runID)
	fmt.Fprintf(file, "Started at: %s\n\n", time.Now().Format(time.RFC3339))

	return fl, nil
}

// RunID returns the unique identifier of this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the location of the run log file.
func (fl *FileLogger) Path() string {
	return fl.path
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}
	err := fl.file.Close()
	fl.file = nil
	return err
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) { fl.log(LevelTrace, message) }

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) { fl.log(LevelDebug, message) }

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) { fl.log(LevelInfo, message) }

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) { fl.log(LevelWarn, message) }

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) { fl.log(LevelError, message) }

func (fl *FileLogger) log(level Level, message string) {
	if level < fl.level {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return
	}
	fmt.Fprintf(fl.file, "[%s] [%s] %s\n", time.Now().Format("15:04:05"), level, message)
}
