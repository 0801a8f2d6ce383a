package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"mayafbx/internal/core/fbxprop"
)

// TestNewExportOptions_FactoryDefaults tests the factory default record
func TestNewExportOptions_FactoryDefaults(t *testing.T) {
	o := NewExportOptions()

	assert.False(t, o.SmoothingGroups)
	assert.False(t, o.HardEdges)
	assert.False(t, o.Tangents)
	assert.True(t, o.SmoothMesh)
	assert.True(t, o.BlindData)
	assert.True(t, o.ReferencedAssetContent)
	assert.False(t, o.Triangulate)
	assert.Equal(t, NurbsSurfaceAsNurbs, o.ConvertNurbsSurfaceAs)

	assert.True(t, o.Animation)
	assert.Equal(t, QuaternionResampleAsEuler, o.QuaternionInterpolation)
	assert.False(t, o.BakeComplexAnimation)
	assert.Equal(t, 1, o.BakeAnimationStep)
	assert.True(t, o.Deformation)
	assert.True(t, o.DeformationSkins)
	assert.True(t, o.DeformationShapes)
	assert.Equal(t, 0.0001, o.KeyReducerTranslationPrecision)
	assert.Equal(t, 0.009, o.KeyReducerRotationPrecision)
	assert.Equal(t, 0.004, o.KeyReducerScalePrecision)
	assert.Equal(t, 0.009, o.KeyReducerOtherPrecision)
	assert.True(t, o.KeyReducerAutoTangentsOnly)
	assert.False(t, o.Constraints)
	assert.False(t, o.SkeletonDefinitions)

	assert.True(t, o.Cameras)
	assert.True(t, o.Lights)
	assert.True(t, o.Audio)
	assert.False(t, o.EmbedMedia)
	assert.True(t, o.BindPose)
	assert.True(t, o.IncludeChildren)
	assert.True(t, o.InputConnections)

	assert.True(t, o.AutomaticUnits)
	assert.Equal(t, AxisConversionAnimation, o.AxisConversionMethod)
	assert.True(t, o.ShowWarningUI)
	assert.True(t, o.GenerateLog)
	assert.Equal(t, FileFormatBinary, o.FileFormat)
	assert.False(t, o.DeleteOriginalTakeOnSplitAnimation)

	// Host-derived fields stay unset until apply time.
	assert.Nil(t, o.BakeAnimationStart, "Bake start resolves from the host timeline")
	assert.Nil(t, o.BakeAnimationEnd, "Bake end resolves from the host timeline")
	assert.Equal(t, ConvertUnit(""), o.ConvertUnitsTo, "Units resolve from the host scene")
	assert.Equal(t, UpAxis(""), o.UpAxis, "Up axis resolves from the host scene")
	assert.Equal(t, FileVersion(""), o.FileVersion, "File version resolves from the plug-in")

	assert.NoError(t, Validate(o), "Factory defaults must validate")
}

// TestExportOptions_FieldOrderIsStable tests the canonical serialization order
func TestExportOptions_FieldOrderIsStable(t *testing.T) {
	o := NewExportOptions()
	fields := o.Fields()

	require.Len(t, fields, 50)
	assert.Equal(t, "smoothing_groups", fields[0].Name, "Geometry block leads")
	assert.Equal(t, "delete_original_take_on_split_animation", fields[len(fields)-1].Name,
		"Later additions go last so the established order never shifts")

	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.False(t, names[f.Name], "Field name %q must be unique", f.Name)
		names[f.Name] = true
		require.NotNil(t, f.Prop, "Field %q must carry a descriptor", f.Name)
		require.NotNil(t, f.Get, "Field %q must be readable", f.Name)
		require.NotNil(t, f.Set, "Field %q must be writable", f.Name)
	}

	again := o.Fields()
	for i := range fields {
		assert.Equal(t, fields[i].Name, again[i].Name, "Order must not change between calls")
	}
}

// TestExportOptions_AssignmentsSerializeConfiguredValues tests record serialization
func TestExportOptions_AssignmentsSerializeConfiguredValues(t *testing.T) {
	o := NewExportOptions()
	o.Triangulate = true
	o.FileFormat = FileFormatASCII
	o.ConvertUnitsTo = UnitCentimeters

	assignments, err := Assignments(o)
	require.NoError(t, err)
	require.Len(t, assignments, 50, "Every field serializes")

	byCommand := map[string]fbxprop.Assignment{}
	for _, a := range assignments {
		byCommand[a.Prop.Command] = a
	}

	cmd, err := byCommand["FBXProperty Export|IncludeGrp|Geometry|Triangulate"].Command()
	require.NoError(t, err)
	assert.Equal(t, "FBXProperty Export|IncludeGrp|Geometry|Triangulate -v true", cmd)

	cmd, err = byCommand["FBXProperty Export|AdvOptGrp|Fbx|AsciiFbx"].Command()
	require.NoError(t, err)
	assert.Equal(t, `FBXProperty Export|AdvOptGrp|Fbx|AsciiFbx -v "ASCII"`, cmd)

	cmd, err = byCommand["FBXExportConvertUnitString"].Command()
	require.NoError(t, err)
	assert.Equal(t, `FBXExportConvertUnitString -v "cm"`, cmd, "An explicitly set unit serializes directly")

	cmd, err = byCommand["FBXExportAxisConversionMethod"].Command()
	require.NoError(t, err)
	assert.Equal(t, `FBXExportAxisConversionMethod "convertAnimation"`, cmd,
		"The axis conversion command takes its value without -v")

	start := byCommand["FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameStart"]
	assert.True(t, start.Deferred(), "Unset bake start defers to the host")
	assert.Equal(t, fbxprop.SourceTimelineStart, start.Resolve)

	end := byCommand["FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameEnd"]
	assert.True(t, end.Deferred())
	assert.Equal(t, fbxprop.SourceTimelineEnd, end.Resolve)

	upAxis := byCommand["FBXProperty Export|AdvOptGrp|AxisConvGrp|UpAxis"]
	assert.True(t, upAxis.Deferred())
	assert.Equal(t, fbxprop.SourceSceneUpAxis, upAxis.Resolve)

	version := byCommand["FBXExportFileVersion"]
	assert.True(t, version.Deferred())
	assert.Equal(t, fbxprop.SourcePluginFileVersion, version.Resolve)
}

// TestExportOptions_AssignmentsAreDeterministic tests repeatable serialization
func TestExportOptions_AssignmentsAreDeterministic(t *testing.T) {
	render := func(o *ExportOptions) []string {
		assignments, err := Assignments(o)
		require.NoError(t, err)
		out := make([]string, 0, len(assignments))
		for _, a := range assignments {
			if a.Deferred() {
				out = append(out, "deferred:"+a.Prop.Command)
				continue
			}
			cmd, err := a.Command()
			require.NoError(t, err)
			out = append(out, cmd)
		}
		return out
	}

	o := NewExportOptions()
	o.BakeComplexAnimation = true
	first := render(o)
	second := render(o)
	assert.Equal(t, first, second, "Serializing twice yields the same command sequence")

	// A mutation that is reverted leaves no trace in the output.
	o.Triangulate = true
	o.Triangulate = false
	assert.Equal(t, first, render(o), "Reverted mutations do not leak into the sequence")
}

// TestExportOptions_ValidateAggregatesFieldErrors tests whole-record validation
func TestExportOptions_ValidateAggregatesFieldErrors(t *testing.T) {
	o := NewExportOptions()
	o.FileFormat = "Text"
	o.ConvertNurbsSurfaceAs = "Polygon"
	o.BakeAnimationStep = 0

	err := Validate(o)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "Validation returns the aggregate error type")
	require.Len(t, verr.Errors, 3, "Every invalid field is reported in one pass")

	fields := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fe.Field
	}
	assert.Contains(t, fields, "file_format")
	assert.Contains(t, fields, "convert_nurbs_surface_as")
	assert.Contains(t, fields, "bake_animation_step")

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "must be one of")

	_, aerr := Assignments(o)
	assert.Error(t, aerr, "An invalid record never serializes")
}

// TestExportOptions_SetFieldValidatesBeforeWriting tests assignment-time rejection
func TestExportOptions_SetFieldValidatesBeforeWriting(t *testing.T) {
	o := NewExportOptions()

	err := SetField(o, "file_format", "Text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file_format")
	assert.Contains(t, err.Error(), "must be one of")
	assert.Equal(t, FileFormatBinary, o.FileFormat, "Failed assignment leaves the prior value")

	err = SetField(o, "bake_animation_step", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
	assert.Equal(t, 1, o.BakeAnimationStep)

	err = SetField(o, "no_such_field", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown export field "no_such_field"`)

	require.NoError(t, SetField(o, "triangulate", true))
	assert.True(t, o.Triangulate)

	require.NoError(t, SetField(o, "file_format", string(FileFormatASCII)))
	assert.Equal(t, FileFormatASCII, o.FileFormat)
}

// TestExportOptions_SetFieldText tests text parsing through the descriptor types
func TestExportOptions_SetFieldText(t *testing.T) {
	o := NewExportOptions()

	require.NoError(t, SetFieldText(o, "triangulate", "true"))
	assert.True(t, o.Triangulate)

	require.NoError(t, SetFieldText(o, "smooth_mesh", "0"))
	assert.False(t, o.SmoothMesh, "Plug-in reply spelling parses too")

	require.NoError(t, SetFieldText(o, "bake_animation_start", "48"))
	require.NotNil(t, o.BakeAnimationStart)
	assert.Equal(t, 48, *o.BakeAnimationStart)

	require.NoError(t, SetFieldText(o, "constant_key_reducer_translation_precision", "0.001"))
	assert.Equal(t, 0.001, o.KeyReducerTranslationPrecision)

	require.NoError(t, SetFieldText(o, "up_axis", "Z"))
	assert.Equal(t, UpAxisZ, o.UpAxis)

	err := SetFieldText(o, "bake_animation_step", "fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bake_animation_step")

	err = SetFieldText(o, "up_axis", "W")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

// TestExportOptions_SetFieldRoundTrips property: accepted writes read back identically
func TestExportOptions_SetFieldRoundTrips(t *testing.T) {
	o := NewExportOptions()
	var boolFields []string
	for _, f := range o.Fields() {
		if f.Prop.Kind == fbxprop.KindBool {
			boolFields = append(boolFields, f.Name)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(boolFields).Draw(t, "field")
		value := rapid.Bool().Draw(t, "value")

		require.NoError(t, SetField(o, name, value))

		f, ok := Lookup(o, name)
		require.True(t, ok)
		assert.Equal(t, value, f.Get(), "Field %q must read back what was written", name)
	})
}
