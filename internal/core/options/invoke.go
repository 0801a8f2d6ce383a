package options

import (
	"fmt"
	"path"
	"strings"

	"mayafbx/internal/mel"
)

// Commands that drive the plug-in around a configured record.
const (
	// ResetExportCommand loads the plug-in's factory export preset.
	ResetExportCommand = "FBXResetExport"
	// ResetImportCommand loads the plug-in's factory import preset.
	ResetImportCommand = "FBXResetImport"
	// PropertiesCommand dumps every plug-in property with its current
	// value.
	PropertiesCommand = "FBXProperties"
)

// NormalizePath converts a scene file path to the forward slash form the
// FBXExport and FBXImport commands require, regardless of the platform the
// host runs on.
func NormalizePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("file path required")
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Clean(p), nil
}

// ExportCommand returns the FBXExport statement writing the scene, or only
// the current selection, to the given file.
func ExportCommand(file string, selection bool) (string, error) {
	normalized, err := NormalizePath(file)
	if err != nil {
		return "", err
	}
	cmd := "FBXExport -f " + mel.Quote(normalized)
	if selection {
		cmd += " -s"
	}
	return cmd, nil
}

// ImportCommand returns the FBXImport statement loading the given file. A
// non-nil take selects the take to load: 0 imports no animation, -1 the
// last take in the file, anything below -1 is invalid.
func ImportCommand(file string, take *int) (string, error) {
	normalized, err := NormalizePath(file)
	if err != nil {
		return "", err
	}
	cmd := "FBXImport -f " + mel.Quote(normalized)
	if take != nil {
		if *take < -1 {
			return "", fmt.Errorf("take index must be -1 or greater, got %d", *take)
		}
		cmd += fmt.Sprintf(" -t %d", *take)
	}
	return cmd, nil
}

// LoadPresetCommand returns the statement loading a plug-in preset file
// from a path on the host into the export or import settings.
func LoadPresetCommand(dir Direction, file string) (string, error) {
	normalized, err := NormalizePath(file)
	if err != nil {
		return "", err
	}
	switch dir {
	case DirectionExport:
		return "FBXLoadExportPresetFile -f " + mel.Quote(normalized), nil
	case DirectionImport:
		return "FBXLoadImportPresetFile -f " + mel.Quote(normalized), nil
	}
	return "", fmt.Errorf("unknown direction %q", dir)
}
