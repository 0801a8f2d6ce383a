package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mayafbx/internal/core/fbxprop"
	"mayafbx/internal/core/options"
	"mayafbx/internal/interfaces/di"
)

// PropertiesFlags holds command-line flags for the properties command
type PropertiesFlags struct {
	Check bool
	JSON  bool
}

// NewPropertiesCommand creates the properties subcommand
func NewPropertiesCommand(container *di.Container) *cobra.Command {
	flags := &PropertiesFlags{}

	cmd := &cobra.Command{
		Use:   "properties [export|import]",
		Short: "List the plug-in properties a live host reports",
		Long: `Dump the FBX plug-in property tree from the host.

Without an argument both sides are listed. With --check the dump is
compared against the property table this tool was built with, which
catches plug-in versions that renamed, retyped or dropped properties.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProperties(cmd, container, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.Check, "check", false, "Compare the host against the built-in property table")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print raw JSON instead of a table")

	return cmd
}

// runProperties executes the properties command
func runProperties(cmd *cobra.Command, container *di.Container, flags *PropertiesFlags, args []string) error {
	dir, err := parseDirection(args, "")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if flags.Check {
		dirs := []options.Direction{options.DirectionExport, options.DirectionImport}
		if dir != "" {
			dirs = []options.Direction{dir}
		}
		failed := false
		for _, d := range dirs {
			findings, err := container.Service.CheckProperties(ctx, d)
			if err != nil {
				return err
			}
			printFindings(d, findings)
			if fbxprop.HasErrors(findings) {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("host property table differs from the model")
		}
		return nil
	}

	infos, err := container.Service.Properties(ctx, dir)
	if err != nil {
		return err
	}

	if flags.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(8)
	for _, info := range infos {
		fmt.Printf("%s %s %s\n",
			typeStyle.Render(info.Type),
			pathStyle.Render(info.Path),
			info.Value)
	}
	fmt.Printf("\n%d properties\n", len(infos))
	return nil
}

// printFindings renders one direction's comparison result.
func printFindings(dir options.Direction, findings []fbxprop.Finding) {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Println(header.Render(fmt.Sprintf("%s properties", dir)))

	if len(findings) == 0 {
		fmt.Println("  ✅ Host agrees with the built-in table")
		return
	}

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	for _, f := range findings {
		line := fmt.Sprintf("  [%s] %s: %s", f.Level, f.Path, f.Message)
		if f.Level == fbxprop.LevelError {
			fmt.Println(errStyle.Render(line))
		} else {
			fmt.Println(infoStyle.Render(line))
		}
	}
}
