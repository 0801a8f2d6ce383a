package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"mayafbx/internal/infrastructure/config"
	"mayafbx/internal/interfaces/di"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and host connectivity",
		Long: `Check that mayafbx can reach a Maya host and use the FBX plug-in.

This command will:
- Show the effective configuration
- Reach the configured host
- Load the FBX plug-in if it is not loaded
- Report Maya and plug-in versions`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, container)
		},
	}
}

// runDoctor handles the health check
func runDoctor(cmd *cobra.Command, container *di.Container) error {
	fmt.Println("🔍 mayafbx doctor")
	fmt.Println("")

	settings := container.Settings
	fmt.Println("Configuration:")
	fmt.Println("─────────────────────")
	fmt.Printf("Mode: %s\n", settings.Mode)
	if settings.Mode == config.ModePrompt {
		fmt.Printf("Maya binary: %s\n", settings.MayaBin)
	} else {
		fmt.Printf("Host: %s\n", settings.Host)
	}
	fmt.Printf("Timeout: %s\n", settings.Timeout)
	fmt.Printf("Restore host state: %t\n", settings.Restore)
	fmt.Printf("Preset directory: %s\n", settings.PresetDir)
	fmt.Println("")

	fmt.Print("Reaching Maya... ")
	report, err := container.Service.Doctor(cmd.Context())
	if err != nil {
		fmt.Println("❌ Failed")
		if settings.Mode == config.ModePrompt {
			return fmt.Errorf("%w\n\nPlease check:\n- %q starts Maya (try --maya-bin)\n- A batch license is available", err, settings.MayaBin)
		}
		return fmt.Errorf("%w\n\nPlease check:\n- Maya is running\n- A command port is open: commandPort -name \":%s\" -sourceType \"mel\"\n- The host address is correct (currently %s)",
			err, portOf(settings.Host), settings.Host)
	}
	fmt.Println("✅ Connected")

	fmt.Println("")
	fmt.Println("Host:")
	fmt.Println("─────────────────────")
	fmt.Printf("Maya version: %d\n", report.MayaVersion)
	fmt.Printf("FBX plug-in loaded: %t\n", report.PluginLoaded)
	fmt.Printf("FBX plug-in version: %s\n", report.PluginVersion)
	fmt.Printf("Export fields modeled: %d\n", report.ExportFields)
	fmt.Printf("Import fields modeled: %d\n", report.ImportFields)

	fmt.Println("")
	fmt.Println("✅ Ready to export and import")
	return nil
}

// portOf extracts the port from a host:port address for display.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "7001"
	}
	return port
}
