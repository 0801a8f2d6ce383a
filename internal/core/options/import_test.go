package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayafbx/internal/core/fbxprop"
)

// TestNewImportOptions_FactoryDefaults tests the factory default record
func TestNewImportOptions_FactoryDefaults(t *testing.T) {
	o := NewImportOptions()

	assert.Equal(t, MergeModeMerge, o.MergeMode)
	assert.False(t, o.SmoothingGroups)
	assert.False(t, o.UnlockNormals)
	assert.True(t, o.BlindData)
	assert.True(t, o.RemoveBadPolys)

	assert.True(t, o.Animation)
	assert.False(t, o.FillTimeline)
	assert.True(t, o.BakeAnimationLayers)
	assert.Equal(t, QuaternionResampleAsEuler, o.QuaternionInterpolation)
	assert.True(t, o.DeformNullsAsJoints)
	assert.True(t, o.NullsToPivot)
	assert.True(t, o.PointCache)
	assert.True(t, o.Deformation)
	assert.False(t, o.NormalizeWeights)
	assert.False(t, o.KeepAttributesLocked)
	assert.Equal(t, SamplingRateScene, o.SamplingRate)
	assert.Equal(t, 30.0, o.CustomSamplingRate)
	assert.True(t, o.Constraints)
	assert.Equal(t, SkeletonDefinitionHumanIK, o.SkeletonDefinition)

	assert.True(t, o.Cameras)
	assert.True(t, o.Lights)
	assert.True(t, o.Audio)

	assert.True(t, o.AutomaticUnits)
	assert.False(t, o.AxisConversion)
	assert.Equal(t, ForcedFileAxisDisabled, o.ForcedFileAxis)
	assert.True(t, o.ShowWarningUI)
	assert.True(t, o.GenerateLog)

	assert.Equal(t, ConvertUnit(""), o.ConvertUnitsTo, "Units resolve from the host scene")
	assert.Equal(t, UpAxis(""), o.UpAxis, "Up axis resolves from the host scene")

	assert.NoError(t, Validate(o), "Factory defaults must validate")
}

// TestImportOptions_FieldOrderIsStable tests the canonical serialization order
func TestImportOptions_FieldOrderIsStable(t *testing.T) {
	o := NewImportOptions()
	fields := o.Fields()

	require.Len(t, fields, 36)
	assert.Equal(t, "merge_mode", fields[0].Name, "Merge mode leads the import sequence")
	assert.Equal(t, "generate_log", fields[len(fields)-1].Name)

	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.False(t, names[f.Name], "Field name %q must be unique", f.Name)
		names[f.Name] = true
	}
}

// TestImportOptions_AssignmentsSerializeConfiguredValues tests record serialization
func TestImportOptions_AssignmentsSerializeConfiguredValues(t *testing.T) {
	o := NewImportOptions()
	o.MergeMode = MergeModeAdd
	o.SamplingRate = SamplingRateCustom
	o.CustomSamplingRate = 24.0

	assignments, err := Assignments(o)
	require.NoError(t, err)
	require.Len(t, assignments, 36)

	byCommand := map[string]fbxprop.Assignment{}
	for _, a := range assignments {
		byCommand[a.Prop.Command] = a
	}

	cmd, err := byCommand["FBXImportMode"].Command()
	require.NoError(t, err)
	assert.Equal(t, `FBXImportMode -v "add"`, cmd)

	cmd, err = byCommand["FBXProperty Import|IncludeGrp|Animation|SamplingPanel|SamplingRateSelector"].Command()
	require.NoError(t, err)
	assert.Equal(t, `FBXProperty Import|IncludeGrp|Animation|SamplingPanel|SamplingRateSelector -v "Custom"`, cmd)

	cmd, err = byCommand["FBXProperty Import|IncludeGrp|Animation|SamplingPanel|CurveFilterSamplingRate"].Command()
	require.NoError(t, err)
	assert.Equal(t, "FBXProperty Import|IncludeGrp|Animation|SamplingPanel|CurveFilterSamplingRate -v 24", cmd)

	units := byCommand["FBXProperty Import|AdvOptGrp|UnitsGrp|UnitsSelector"]
	assert.True(t, units.Deferred(), "Unset units defer to the host scene")
	assert.Equal(t, fbxprop.SourceSceneUnit, units.Resolve)
}

// TestImportOptions_MergeModeValidation tests the merge mode closed set
func TestImportOptions_MergeModeValidation(t *testing.T) {
	o := NewImportOptions()

	err := SetField(o, "merge_mode", "replace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
	assert.Equal(t, MergeModeMerge, o.MergeMode, "Failed assignment leaves the prior value")

	for _, mode := range []MergeMode{MergeModeAdd, MergeModeMerge, MergeModeUpdateAnimation, MergeModeUpdateKeyedTransforms} {
		require.NoError(t, SetField(o, "merge_mode", string(mode)))
		assert.Equal(t, mode, o.MergeMode)
	}

	o.MergeMode = "exmergeb"
	err = Validate(o)
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "merge_mode", verr.Errors[0].Field)
}
