package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mayafbx/internal/application/services"
	"mayafbx/internal/core/options"
	"mayafbx/internal/interfaces/di"
)

// ExportFlags holds command-line flags for the export command
type ExportFlags struct {
	Selection          bool
	Preset             string
	Sets               []string
	Takes              []string
	Ascii              bool
	Triangulate        bool
	EmbedMedia         bool
	NoAnimation        bool
	BakeRange          string
	DeleteOriginalTake bool
}

// NewExportCommand creates the export subcommand
func NewExportCommand(container *di.Container) *cobra.Command {
	flags := &ExportFlags{}

	cmd := &cobra.Command{
		Use:   "export <file.fbx>",
		Short: "Export the scene or selection to an FBX file",
		Long: `Export the Maya scene to an FBX file.

The plug-in is reset to factory defaults first, then the requested
settings are applied in declaration order, then FBXExport runs. Fields
you leave unset are derived from the scene: the bake range from the
timeline, units and up axis from the scene preferences.

Examples:
  # Export the whole scene with defaults
  mayafbx export /renders/scene.fbx

  # Export the selection as ASCII FBX with embedded textures
  mayafbx export --selection --ascii --embed-media /renders/props.fbx

  # Bake frames 1-120 and split them into named takes
  mayafbx export --bake-range 1:120 --take walk=1:60 --take run=61:120 /renders/anim.fbx

  # Start from a stored preset, then pin one field on top
  mayafbx export --preset game --set smoothing_groups=true /renders/level.fbx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, container, flags, args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Selection, "selection", "s", false, "Export only the selected nodes")
	cmd.Flags().StringVar(&flags.Preset, "preset", "", "Start from a stored export preset")
	cmd.Flags().StringArrayVar(&flags.Sets, "set", nil, "Pin a field, field=value (repeatable)")
	cmd.Flags().StringArrayVar(&flags.Takes, "take", nil, "Split animation into a take, name=start:end (repeatable)")
	cmd.Flags().BoolVar(&flags.Ascii, "ascii", false, "Write ASCII FBX instead of binary")
	cmd.Flags().BoolVar(&flags.Triangulate, "triangulate", false, "Tessellate polygons on export")
	cmd.Flags().BoolVar(&flags.EmbedMedia, "embed-media", false, "Embed textures in the file")
	cmd.Flags().BoolVar(&flags.NoAnimation, "no-animation", false, "Skip animation entirely")
	cmd.Flags().StringVar(&flags.BakeRange, "bake-range", "", "Bake complex animation over start:end frames")
	cmd.Flags().BoolVar(&flags.DeleteOriginalTake, "delete-original-take", false, "Drop the source take after splitting")

	return cmd
}

// runExport executes the export command
func runExport(cmd *cobra.Command, container *di.Container, flags *ExportFlags, file string) error {
	opts, err := buildExportRecord(container, flags)
	if err != nil {
		return err
	}

	takes, err := parseTakes(flags.Takes)
	if err != nil {
		return err
	}

	err = container.Service.Export(cmd.Context(), services.ExportRequest{
		File:      file,
		Options:   opts,
		Selection: flags.Selection,
		Takes:     takes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Exported %s\n", file)
	return nil
}

// buildExportRecord assembles the export record from preset, sugar flags
// and --set pairs, in that order, so later layers win.
func buildExportRecord(container *di.Container, flags *ExportFlags) (*options.ExportOptions, error) {
	opts := options.NewExportOptions()

	if flags.Preset != "" {
		record, err := container.Presets.Load(flags.Preset)
		if err != nil {
			return nil, err
		}
		loaded, ok := record.(*options.ExportOptions)
		if !ok {
			return nil, fmt.Errorf("preset %q is an import preset", flags.Preset)
		}
		opts = loaded
	}

	if flags.Ascii {
		opts.FileFormat = options.FileFormatASCII
	}
	if flags.Triangulate {
		opts.Triangulate = true
	}
	if flags.EmbedMedia {
		opts.EmbedMedia = true
	}
	if flags.NoAnimation {
		opts.Animation = false
	}
	if flags.BakeRange != "" {
		start, end, err := parseFrameRange(flags.BakeRange)
		if err != nil {
			return nil, fmt.Errorf("--bake-range: %w", err)
		}
		opts.BakeComplexAnimation = true
		opts.BakeAnimationStart = &start
		opts.BakeAnimationEnd = &end
	}
	if flags.DeleteOriginalTake {
		opts.DeleteOriginalTakeOnSplitAnimation = true
	}

	if err := applySetFlags(opts, flags.Sets); err != nil {
		return nil, err
	}
	return opts, nil
}
