package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoggerCreatesRunLog(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	fl, err := NewFileLogger(logDir, LevelDebug)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	if fl.RunID() == "" {
		t.Error("run ID should not be empty")
	}
	if !strings.HasPrefix(filepath.Base(fl.Path()), "run-") {
		t.Errorf("run log name = %q, want run-*.log", filepath.Base(fl.Path()))
	}

	fl.LogDebug("discovered 2 fortune file(s)")
	if err := fl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, fl.RunID()) {
		t.Error("run log header should carry the run ID")
	}
	if !strings.Contains(content, "discovered 2 fortune file(s)") {
		t.Errorf("run log should carry logged messages, got %q", content)
	}
	if !strings.Contains(content, "[DEBUG]") {
		t.Errorf("run log lines should carry level tags, got %q", content)
	}
}

func TestFileLoggerLatestSymlink(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, LevelInfo)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log should be a symlink: %v", err)
	}
	if target != filepath.Base(fl.Path()) {
		t.Errorf("latest.log -> %q, want %q", target, filepath.Base(fl.Path()))
	}
}

func TestFileLoggerFiltersBelowLevel(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, LevelError)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	fl.LogDebug("hidden")
	fl.LogError("visible")
	fl.Close()

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}

	if strings.Contains(string(data), "hidden") {
		t.Error("messages below the configured level should be discarded")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("error messages should be written")
	}
}

func TestFileLoggerLogAfterClose(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, LevelInfo)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	fl.Close()

	// Must not panic.
	fl.LogInfo("after close")

	if err := fl.Close(); err != nil {
		t.Errorf("double Close() should be a no-op, got %v", err)
	}
}

func TestMultiFansOut(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, LevelInfo)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	var buf strings.Builder
	multi := Multi{NewConsoleLogger(&buf, LevelInfo), fl}

	multi.LogInfo("both places")
	fl.Close()

	if !strings.Contains(buf.String(), "both places") {
		t.Error("console logger should receive the message")
	}

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	if !strings.Contains(string(data), "both places") {
		t.Error("file logger should receive the message")
	}
}
