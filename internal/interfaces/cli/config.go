package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mayafbx/internal/infrastructure/config"
	"mayafbx/internal/interfaces/di"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *di.Container) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage configuration settings for mayafbx.

Settings resolve from defaults, then the config file, then MAYAFBX_*
environment variables, then command-line flags. The subcommands show
the effective result of that resolution.`,
	}

	// Add subcommands
	configCmd.AddCommand(newConfigShowCommand(container))
	configCmd.AddCommand(newConfigPathCommand())
	configCmd.AddCommand(newConfigInitCommand(container))

	return configCmd
}

// newConfigShowCommand creates the show subcommand
func newConfigShowCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSettings(container.Settings)
			return nil
		},
	}
}

func printSettings(s config.Settings) {
	fmt.Println("Current Configuration:")
	fmt.Printf("Host: %s\n", s.Host)
	fmt.Printf("Mode: %s\n", s.Mode)
	fmt.Printf("Maya binary: %s\n", s.MayaBin)
	fmt.Printf("Timeout: %s\n", s.Timeout)
	fmt.Printf("Restore host state: %t\n", s.Restore)
	fmt.Printf("Preset directory: %s\n", s.PresetDir)
}

// newConfigPathCommand creates the path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Configuration file path: %s\n", config.DefaultPath())
			return nil
		},
	}
}

// newConfigInitCommand creates the init subcommand
func newConfigInitCommand(container *di.Container) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the effective configuration to the config file.

Combine with flags to persist them, for example:
  mayafbx config init --host 10.0.0.5:7101 --timeout 90s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(path, container.Settings); err != nil {
				return err
			}
			fmt.Printf("✅ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "Write to this path instead of the default")

	return cmd
}
