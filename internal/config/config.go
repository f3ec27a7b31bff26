// Package config holds the persistent settings file and the validated
// run configuration consumed by the fortune pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/harrison/fortune/internal/filelock"
)

// Settings are the persistent options read from the YAML settings file.
type Settings struct {
	// Sources are the default fortune files or directories used when
	// none are given on the command line.
	Sources []string `yaml:"sources"`

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogDir, when set, enables per-run log files in this directory.
	LogDir string `yaml:"log_dir,omitempty"`

	// Color controls source-header colorization (auto, always, never).
	Color string `yaml:"color"`
}

// Config is the validated configuration consumed by the pipeline.
type Config struct {
	// Sources are the input files and directories to scan.
	Sources []string

	// Pattern, when non-nil, activates filter mode. Case sensitivity is
	// baked in at compile time.
	Pattern *regexp.Regexp

	// Seed, when non-nil, makes random-pick mode deterministic.
	Seed *uint64
}

// DefaultSettings returns Settings with sensible default values.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "info",
		Color:    "auto",
	}
}

// DefaultPath returns the standard settings file location,
// ~/.fortune/config.yaml. Falls back to a relative path when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fortune", "config.yaml")
	}
	return filepath.Join(home, ".fortune", "config.yaml")
}

// LoadSettings loads settings from the given file path.
// If the file doesn't exist, returns default settings without error.
// If the file exists but is malformed, returns an error.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var fileSettings Settings
	if err := yaml.Unmarshal(data, &fileSettings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	// Apply non-zero values from the file over the defaults.
	if len(fileSettings.Sources) > 0 {
		settings.Sources = fileSettings.Sources
	}
	if fileSettings.LogLevel != "" {
		settings.LogLevel = fileSettings.LogLevel
	}
	if fileSettings.LogDir != "" {
		settings.LogDir = fileSettings.LogDir
	}
	if fileSettings.Color != "" {
		settings.Color = fileSettings.Color
	}

	return settings, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	switch s.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", s.LogLevel)
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", s.Color)
	}

	return nil
}

// CompilePattern compiles a user-supplied pattern, prefixing (?i) when
// case-insensitive matching was requested. This runs before the
// pipeline so an invalid pattern never reaches the selector.
func CompilePattern(pattern string, insensitive bool) (*regexp.Regexp, error) {
	expr := pattern
	if insensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// defaultFileContent is the commented template written by Init.
const defaultFileContent = `# fortune settings
#
# sources are used when no files or directories are given on the
# command line.
#sources:
#  - /usr/share/games/fortunes

# Diagnostic verbosity: trace, debug, info, warn, error.
log_level: info

# Write per-run log files to this directory.
#log_dir: ~/.fortune/logs

# Colorize source headers in filter mode: auto, always, never.
color: auto
`

// Init writes the default settings file at path. It refuses to
// overwrite an existing file, and takes an exclusive lock for the write
// so concurrent invocations cannot corrupt it.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists: %s", path)
	}

	if err := filelock.WriteFileLocked(path, []byte(defaultFileContent)); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
