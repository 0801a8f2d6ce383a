package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mayafbx/internal/interfaces/di"
)

// NewResetCommand creates the reset subcommand
func NewResetCommand(container *di.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [export|import|all]",
		Short: "Reset plug-in settings to factory defaults",
		Long: `Reset the FBX plug-in settings on the host to factory defaults.

Without an argument both sides are reset. This is the same reset every
export and import performs before applying its own settings; run it by
hand when a Maya session has accumulated state you want gone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, container, args)
		},
	}

	return cmd
}

// runReset executes the reset command
func runReset(cmd *cobra.Command, container *di.Container, args []string) error {
	side := "all"
	if len(args) > 0 {
		side = args[0]
	}
	if side != "export" && side != "import" && side != "all" {
		return fmt.Errorf("unknown side %q, want export, import or all", side)
	}

	ctx := cmd.Context()

	if side == "export" || side == "all" {
		if err := container.Service.ResetExport(ctx); err != nil {
			return err
		}
		fmt.Println("✅ Export settings reset")
	}
	if side == "import" || side == "all" {
		if err := container.Service.ResetImport(ctx); err != nil {
			return err
		}
		fmt.Println("✅ Import settings reset")
	}

	return nil
}
