package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/fortune/internal/config"
)

// NewConfigCommand groups the settings-file maintenance subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fortune settings file",
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigInitCommand creates the "config init" subcommand.
func newConfigInitCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default settings file",
		Long: `Write a default settings file with every option commented.
Refuses to overwrite an existing file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := settingsFileOrDefault(path)
			if err := config.Init(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote settings file to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "settings file location")

	return cmd
}

// newConfigShowCommand creates the "config show" subcommand.
func newConfigShowCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Print the effective settings",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsFileOrDefault(path))
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to render settings: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "settings file location")

	return cmd
}
