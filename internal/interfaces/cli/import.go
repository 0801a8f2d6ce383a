package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mayafbx/internal/application/services"
	"mayafbx/internal/core/options"
	"mayafbx/internal/interfaces/di"
)

// ImportFlags holds command-line flags for the import command
type ImportFlags struct {
	Take         int
	Preset       string
	Sets         []string
	Mode         string
	FillTimeline bool
	NoAnimation  bool
}

// NewImportCommand creates the import subcommand
func NewImportCommand(container *di.Container) *cobra.Command {
	flags := &ImportFlags{}

	cmd := &cobra.Command{
		Use:   "import <file.fbx>",
		Short: "Import an FBX file into the scene",
		Long: `Import an FBX file into the current Maya scene.

The plug-in is reset to factory defaults first, then the requested
settings are applied, then FBXImport runs.

Examples:
  # Add the file content alongside the scene
  mayafbx import /incoming/props.fbx

  # Merge animation onto matching nodes, second take only
  mayafbx import --mode exmerge --take 2 /incoming/anim.fbx

  # Stretch the timeline to the imported take
  mayafbx import --fill-timeline /incoming/walk.fbx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, container, flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.Take, "take", 0, "Import only this take (1-based, 0 imports none, -1 imports the last)")
	cmd.Flags().StringVar(&flags.Preset, "preset", "", "Start from a stored import preset")
	cmd.Flags().StringArrayVar(&flags.Sets, "set", nil, "Pin a field, field=value (repeatable)")
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "Merge mode: add, merge, exmerge or exmergekeyedxforms")
	cmd.Flags().BoolVar(&flags.FillTimeline, "fill-timeline", false, "Stretch the timeline to the imported take")
	cmd.Flags().BoolVar(&flags.NoAnimation, "no-animation", false, "Skip animation entirely")

	return cmd
}

// runImport executes the import command
func runImport(cmd *cobra.Command, container *di.Container, flags *ImportFlags, file string) error {
	opts, err := buildImportRecord(container, flags)
	if err != nil {
		return err
	}

	req := services.ImportRequest{File: file, Options: opts}
	if cmd.Flags().Changed("take") {
		take := flags.Take
		req.Take = &take
	}

	if err := container.Service.Import(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Printf("✅ Imported %s\n", file)
	return nil
}

// buildImportRecord assembles the import record from preset, sugar flags
// and --set pairs, in that order, so later layers win.
func buildImportRecord(container *di.Container, flags *ImportFlags) (*options.ImportOptions, error) {
	opts := options.NewImportOptions()

	if flags.Preset != "" {
		record, err := container.Presets.Load(flags.Preset)
		if err != nil {
			return nil, err
		}
		loaded, ok := record.(*options.ImportOptions)
		if !ok {
			return nil, fmt.Errorf("preset %q is an export preset", flags.Preset)
		}
		opts = loaded
	}

	if flags.Mode != "" {
		mode := options.MergeMode(flags.Mode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("unknown merge mode %q, want add, merge, exmerge or exmergekeyedxforms", flags.Mode)
		}
		opts.MergeMode = mode
	}
	if flags.FillTimeline {
		opts.FillTimeline = true
	}
	if flags.NoAnimation {
		opts.Animation = false
	}

	if err := applySetFlags(opts, flags.Sets); err != nil {
		return nil, err
	}
	return opts, nil
}
