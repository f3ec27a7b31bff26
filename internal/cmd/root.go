package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/fortune/internal/config"
	"github.com/harrison/fortune/internal/display"
	"github.com/harrison/fortune/internal/fileutil"
	"github.com/harrison/fortune/internal/logger"
	"github.com/harrison/fortune/internal/parser"
	"github.com/harrison/fortune/internal/selector"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fortune
func NewRootCommand() *cobra.Command {
	var (
		pattern      string
		insensitive  bool
		seed         uint64
		logLevel     string
		colorMode    string
		settingsPath string
	)

	cmd := &cobra.Command{
		Use:   "fortune [flags] [file|directory...]",
		Short: "Print a random fortune, or search fortunes by pattern",
		Long: `Fortune aggregates %-delimited text snippets from files and
directories. Without a pattern it prints one snippet chosen at random;
with --pattern it prints every matching snippet, grouped and labeled by
source file.

Files with the .dat extension (pre-indexed companion files) are skipped
during discovery.`,
		Version: Version,
		// Positional args are fortune sources, not subcommands.
		Args: cobra.ArbitraryArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsFileOrDefault(settingsPath))
			if err != nil {
				return err
			}
			if logLevel != "" {
				settings.LogLevel = logLevel
			}
			if colorMode != "" {
				settings.Color = colorMode
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			cfg := &config.Config{Sources: args}
			if len(cfg.Sources) == 0 {
				cfg.Sources = settings.Sources
			}
			if len(cfg.Sources) == 0 {
				return errors.New("no fortune sources given (pass files or directories, or set sources in the settings file)")
			}

			// The pattern must compile before the pipeline runs.
			if cmd.Flags().Changed("pattern") {
				re, err := config.CompilePattern(pattern, insensitive)
				if err != nil {
					return err
				}
				cfg.Pattern = re
			}

			// Distinguish "--seed 0" from no seed at all.
			if cmd.Flags().Changed("seed") {
				s := seed
				cfg.Seed = &s
			}

			log, cleanup := buildLogger(cmd, settings)
			defer cleanup()

			return run(cmd, cfg, settings, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&pattern, "pattern", "m", "", "print all fortunes matching this regular expression")
	flags.BoolVarP(&insensitive, "insensitive", "i", false, "case-insensitive pattern matching")
	flags.Uint64VarP(&seed, "seed", "s", 0, "random seed for reproducible selection")
	flags.StringVar(&logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	flags.StringVar(&colorMode, "color", "", "colorize source headers (auto, always, never)")
	flags.StringVar(&settingsPath, "config", "", "path to the settings file")

	// Add subcommands
	cmd.AddCommand(NewConfigCommand())

	return cmd
}

// run executes the locate -> parse -> select pipeline with a validated
// configuration. Each stage completes before the next begins.
func run(cmd *cobra.Command, cfg *config.Config, settings *config.Settings, log logger.Logger) error {
	files, err := fileutil.FindFiles(cfg.Sources)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("discovered %d fortune file(s)", len(files)))

	fortunes, err := parser.ReadFortunes(files)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("parsed %d fortune(s)", len(fortunes)))

	renderer := display.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.Color)

	if cfg.Pattern != nil {
		matches := selector.Filter(fortunes, cfg.Pattern)
		log.LogDebug(fmt.Sprintf("%d fortune(s) match pattern %s", len(matches), cfg.Pattern))
		renderer.RenderMatches(matches)
		return nil
	}

	var src selector.Source
	if cfg.Seed != nil {
		src = selector.NewSeededSource(*cfg.Seed)
	} else {
		src = selector.NewEntropySource()
	}

	fortune, ok := selector.Pick(fortunes, src)
	renderer.RenderPick(fortune, ok)
	return nil
}

// buildLogger assembles the diagnostic loggers: always a console logger
// on stderr, plus a per-run file logger when a log directory is
// configured. The returned cleanup closes the file logger.
func buildLogger(cmd *cobra.Command, settings *config.Settings) (logger.Logger, func()) {
	level := logger.ParseLevel(settings.LogLevel)
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), level)

	if settings.LogDir == "" {
		return console, func() {}
	}

	fileLogger, err := logger.NewFileLogger(settings.LogDir, level)
	if err != nil {
		// A broken log directory degrades to console-only logging.
		console.LogWarn(fmt.Sprintf("failed to open run log: %v", err))
		return console, func() {}
	}

	return logger.Multi{console, fileLogger}, func() { fileLogger.Close() }
}

// settingsFileOrDefault resolves the settings file location, preferring
// an explicit --config flag over the standard path.
func settingsFileOrDefault(path string) string {
	if path != "" {
		return path
	}
	return config.DefaultPath()
}
