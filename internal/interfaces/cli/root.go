package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"mayafbx/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand represents the base command when called without any subcommands
func NewRootCommand(container *di.Container) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "mayafbx",
		Short: "Drive Maya's FBX plug-in from the command line",
		Long: `mayafbx exports and imports FBX files through a running Maya session
(command port) or a headless maya -prompt interpreter.

Every operation resets the plug-in to factory defaults before applying
its own settings, so the outcome never depends on leftover state from
earlier runs. Fields left unset are derived from the scene: the bake
range from the timeline, units and up axis from the scene preferences.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Apply(collectOverrides(cmd)); err != nil {
				return fmt.Errorf("failed to apply configuration overrides: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = container.Logger.Sync()
		},
	}

	// Set custom version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// Add persistent flags
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is ~/.config/mayafbx/config.json)")
	rootCmd.PersistentFlags().String("host", "", "Maya command port address (host:port)")
	rootCmd.PersistentFlags().String("mode", "", "Transport mode: commandport or prompt")
	rootCmd.PersistentFlags().String("maya-bin", "", "Maya executable for prompt mode")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for a single Maya command")
	rootCmd.PersistentFlags().Bool("no-restore", false, "Leave plug-in settings as the operation set them")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewExportCommand(container))
	rootCmd.AddCommand(NewImportCommand(container))
	rootCmd.AddCommand(NewResetCommand(container))
	rootCmd.AddCommand(NewPropertiesCommand(container))
	rootCmd.AddCommand(NewPresetCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewDoctorCommand(container))
	rootCmd.AddCommand(NewWatchCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// collectOverrides gathers configuration overrides from flags that were
// explicitly set on the command line.
func collectOverrides(cmd *cobra.Command) di.Overrides {
	var o di.Overrides
	if cmd.Flags().Changed("config") {
		v, _ := cmd.Flags().GetString("config")
		o.ConfigPath = &v
	}
	if cmd.Flags().Changed("host") {
		v, _ := cmd.Flags().GetString("host")
		o.Host = &v
	}
	if cmd.Flags().Changed("mode") {
		v, _ := cmd.Flags().GetString("mode")
		o.Mode = &v
	}
	if cmd.Flags().Changed("maya-bin") {
		v, _ := cmd.Flags().GetString("maya-bin")
		o.MayaBin = &v
	}
	if cmd.Flags().Changed("timeout") {
		v, _ := cmd.Flags().GetDuration("timeout")
		o.Timeout = &v
	}
	if cmd.Flags().Changed("no-restore") {
		v, _ := cmd.Flags().GetBool("no-restore")
		restore := !v
		o.Restore = &restore
	}
	o.Verbose, _ = cmd.Flags().GetBool("verbose")
	return o
}

// Execute runs the root command and reports failures on stderr.
func Execute(ctx context.Context, container *di.Container) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
