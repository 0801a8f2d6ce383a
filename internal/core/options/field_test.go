package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayafbx/internal/core/fbxprop"
)

// TestLookup_FindsFieldsByName tests by-name field access
func TestLookup_FindsFieldsByName(t *testing.T) {
	o := NewExportOptions()

	f, ok := Lookup(o, "embed_media")
	require.True(t, ok)
	assert.Equal(t, "embed_media", f.Name)
	assert.Equal(t, "FBXProperty Export|IncludeGrp|EmbedTextureGrp|EmbedTexture", f.Prop.Command)
	assert.Equal(t, false, f.Get())

	_, ok = Lookup(o, "does_not_exist")
	assert.False(t, ok)
}

// TestDirection_Classification tests record direction reporting
func TestDirection_Classification(t *testing.T) {
	assert.Equal(t, DirectionExport, NewExportOptions().Direction())
	assert.Equal(t, DirectionImport, NewImportOptions().Direction())
	assert.True(t, DirectionExport.IsValid())
	assert.True(t, DirectionImport.IsValid())
	assert.False(t, Direction("sideways").IsValid())
}

// TestPropertiesOf_ListsDescriptorsInOrder tests the descriptor view of a record
func TestPropertiesOf_ListsDescriptorsInOrder(t *testing.T) {
	export := PropertiesOf(NewExportOptions())
	require.Len(t, export, 50)
	assert.Equal(t, "FBXProperty Export|IncludeGrp|Geometry|SmoothingGroups", export[0].Command)

	imported := PropertiesOf(NewImportOptions())
	require.Len(t, imported, 36)
	assert.Equal(t, "FBXImportMode", imported[0].Command)

	for _, p := range export {
		if p.Kind == fbxprop.KindEnum {
			assert.NotEmpty(t, p.Values, "Enum property %s must declare its domain", p.Command)
		}
	}
}

// TestValidationError_Formatting tests aggregate error rendering
func TestValidationError_Formatting(t *testing.T) {
	verr := &ValidationError{}
	assert.False(t, verr.HasErrors())
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("file_format", `must be one of [Binary ASCII], got "Text"`)
	verr.Add("bake_animation_step", "must be at least 1, got 0")

	require.True(t, verr.HasErrors())
	assert.Equal(t,
		`validation failed: file_format: must be one of [Binary ASCII], got "Text"; bake_animation_step: must be at least 1, got 0`,
		verr.Error())
}

// TestEnumSpellings_AreWireValues tests a sample of closed set members
func TestEnumSpellings_AreWireValues(t *testing.T) {
	assert.True(t, NurbsSurfaceAsInteractiveDisplayMesh.IsValid())
	assert.True(t, QuaternionRetain.IsValid())
	assert.True(t, UnitInches.IsValid())
	assert.Equal(t, "In", UnitInches.String(), "The plug-in capitalizes inches")
	assert.True(t, FileVersion2020.IsValid())
	assert.Equal(t, "FBX202000", FileVersion2020.String())
	assert.True(t, MergeModeUpdateKeyedTransforms.IsValid())
	assert.Equal(t, "exmergekeyedxforms", MergeModeUpdateKeyedTransforms.String())

	assert.False(t, ConvertUnit("inches").IsValid())
	assert.False(t, MergeMode("Add").IsValid(), "Spellings are case sensitive")

	unit, ok := ConvertUnitFromScene("in")
	require.True(t, ok)
	assert.Equal(t, UnitInches, unit, "Scene reply spelling maps to the plug-in spelling")

	_, ok = ConvertUnitFromScene("dm")
	assert.False(t, ok, "Maya scenes have no decimeter unit")

	axis, ok := UpAxisFromScene("y")
	require.True(t, ok)
	assert.Equal(t, UpAxisY, axis)
}
