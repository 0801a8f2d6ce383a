package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mayafbx/internal/core/options"
	"mayafbx/internal/interfaces/di"
)

// NewPresetCommand creates the preset subcommand tree
func NewPresetCommand(container *di.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage stored option presets",
		Long: `Manage named presets of export and import settings.

A preset stores only the fields you pinned; everything else keeps its
factory default, and scene-derived fields (bake range, units, up axis,
file version) keep resolving from the scene at apply time. Presets are
TOML files you can edit by hand and check into a repository.`,
	}

	cmd.AddCommand(newPresetListCommand(container))
	cmd.AddCommand(newPresetShowCommand(container))
	cmd.AddCommand(newPresetSaveCommand(container))
	cmd.AddCommand(newPresetRmCommand(container))

	return cmd
}

func newPresetListCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := container.Presets.List()
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No presets stored. Create one with: mayafbx preset save <name> --direction export --set field=value")
				return nil
			}

			nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			dirStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(8)
			for _, s := range summaries {
				dir := string(s.Direction)
				if dir == "" {
					dir = "broken"
				}
				fmt.Printf("%s %s\n", dirStyle.Render(dir), nameStyle.Render(s.Name))
			}
			return nil
		},
	}
}

func newPresetShowCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a preset's resolved settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := container.Presets.Load(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n\n", args[0], record.Direction())
			nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
			sceneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
			for _, f := range record.Fields() {
				value := f.Get()
				if value == nil {
					fmt.Printf("  %s = %s\n", nameStyle.Render(f.Name), sceneStyle.Render("(from scene)"))
					continue
				}
				fmt.Printf("  %s = %v\n", nameStyle.Render(f.Name), value)
			}
			return nil
		},
	}
}

func newPresetSaveCommand(container *di.Container) *cobra.Command {
	var (
		direction string
		sets      []string
		fromHost  bool
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Store a preset",
		Long: `Store a named preset.

By default the preset starts from factory defaults and pins only the
fields given with --set. With --from-host the current plug-in state is
read from the live host first, so the settings an artist dialed into
the UI can be kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := options.Direction(direction)
			if !dir.IsValid() {
				return fmt.Errorf("--direction must be export or import")
			}

			var record options.Record
			if fromHost {
				captured, err := container.Service.CaptureOptions(cmd.Context(), dir)
				if err != nil {
					return err
				}
				record = captured
			} else if dir == options.DirectionImport {
				record = options.NewImportOptions()
			} else {
				record = options.NewExportOptions()
			}

			if err := applySetFlags(record, sets); err != nil {
				return err
			}
			if err := container.Presets.Save(args[0], record); err != nil {
				return err
			}

			fmt.Printf("✅ Saved preset %s to %s\n", args[0], container.Presets.Path(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&direction, "direction", "export", "Preset direction: export or import")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Pin a field, field=value (repeatable)")
	cmd.Flags().BoolVar(&fromHost, "from-host", false, "Start from the live host's current settings")

	return cmd
}

func newPresetRmCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Presets.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("✅ Deleted preset %s\n", args[0])
			return nil
		},
	}
}
