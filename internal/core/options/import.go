package options

import "mayafbx/internal/core/fbxprop"

// Import property descriptors, one per record field, in serialization
// order.
var (
	impMergeMode = fbxprop.Property{
		Command: "FBXImportMode",
		Kind:    fbxprop.KindEnum, Values: mergeModeValues,
		Default: string(MergeModeMerge),
	}
	impSmoothingGroups = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Geometry|SmoothingGroups",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impUnlockNormals = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Geometry|UnlockNormals",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impHardEdges = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Geometry|HardEdges",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impBlindData = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Geometry|BlindData",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impRemoveBadPolys = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|Performance|RemoveBadPolysFromMesh",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impAnimation = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impFillTimeline = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|TimeLine",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impBakeAnimationLayers = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|BakeAnimationLayers",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impOpticalMarkers = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|Markers",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impQuaternion = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|Quaternion",
		Kind:    fbxprop.KindEnum, Values: quaternionInterpolationValues,
		Default: string(QuaternionResampleAsEuler),
	}
	impProtectDrivenKeys = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|ProtectDrivenKeys",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impDeformNullsAsJoints = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|DeformNullsAsJoints",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impNullsToPivot = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|NullsToPivot",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impPointCache = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ExtraGrp|PointCache",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impDeformation = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|Deformation",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impDeformationSkins = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|Deformation|Skins",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impDeformationShapes = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|Deformation|Shape",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impNormalizeWeights = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|Deformation|ForceWeightNormalize",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impKeepAttributesLocked = fbxprop.Property{
		Command: "FBXImportSetLockedAttribute",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impSamplingRate = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|SamplingPanel|SamplingRateSelector",
		Kind:    fbxprop.KindEnum, Values: samplingRateValues,
		Default: string(SamplingRateScene),
	}
	impSetMayaFrameRate = fbxprop.Property{
		Command: "FBXImportSetMayaFrameRate",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impCustomSamplingRate = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|SamplingPanel|CurveFilterSamplingRate",
		Kind:    fbxprop.KindDouble, Default: 30.0, Min: ptr(0.0),
	}
	impCurveFilter = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|CurveFilter",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impConstraints = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ConstraintsGrp|Constraint",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impSkeletonDefinition = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Animation|ConstraintsGrp|CharacterType",
		Kind:    fbxprop.KindEnum, Values: skeletonDefinitionValues,
		Default: string(SkeletonDefinitionHumanIK),
	}
	impCameras = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|CameraGrp|Camera",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impLights = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|LightGrp|Light",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impAudio = fbxprop.Property{
		Command: "FBXProperty Import|IncludeGrp|Audio",
		Kind:    fbxprop.KindBool, Default: true, Since: 2019,
	}
	impAutomaticUnits = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|UnitsGrp|DynamicScaleConversion",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impConvertUnits = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|UnitsGrp|UnitsSelector",
		Kind:    fbxprop.KindEnum, Values: convertUnitValues,
		DefaultFrom: fbxprop.SourceSceneUnit,
	}
	impAxisConversion = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|AxisConvGrp|AxisConversion",
		Kind:    fbxprop.KindBool, Default: false,
	}
	impUpAxis = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|AxisConvGrp|UpAxis",
		Kind:    fbxprop.KindEnum, Values: upAxisValues,
		DefaultFrom: fbxprop.SourceSceneUpAxis,
	}
	impForcedFileAxis = fbxprop.Property{
		Command: "FBXImportForcedFileAxis",
		Kind:    fbxprop.KindEnum, Values: forcedFileAxisValues,
		Default: string(ForcedFileAxisDisabled),
	}
	impShowWarningUI = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|UI|ShowWarningsManager",
		Kind:    fbxprop.KindBool, Default: true,
	}
	impGenerateLog = fbxprop.Property{
		Command: "FBXProperty Import|AdvOptGrp|UI|GenerateLogData",
		Kind:    fbxprop.KindBool, Default: true,
	}
)

// ImportOptions configures one FBX import. Construct with NewImportOptions
// to start from the plug-in's factory defaults.
type ImportOptions struct {
	// MergeMode controls how file content lands in the scene.
	MergeMode MergeMode

	// Geometry.

	// SmoothingGroups imports smoothing group information.
	SmoothingGroups bool
	// UnlockNormals recomputes normals as unlocked.
	UnlockNormals bool
	// HardEdges combines geometry vertices split on edge continuity.
	HardEdges bool
	// BlindData imports per-component blind data.
	BlindData bool
	// RemoveBadPolys removes degenerate polygons from imported meshes.
	RemoveBadPolys bool

	// Animation.

	// Animation imports animation at all.
	Animation bool
	// FillTimeline stretches the timeline to the imported take.
	FillTimeline bool
	// BakeAnimationLayers bakes animation layers into the base layer.
	BakeAnimationLayers bool
	// OpticalMarkers imports optical markers as dummy objects.
	OpticalMarkers bool
	// QuaternionInterpolation controls quaternion rotation handling.
	QuaternionInterpolation QuaternionInterpolation
	// ProtectDrivenKeys keeps driven keys out of the incoming animation.
	ProtectDrivenKeys bool
	// DeformNullsAsJoints converts deforming nulls to joints.
	DeformNullsAsJoints bool
	// NullsToPivot assigns imported null pivots to joints.
	NullsToPivot bool
	// PointCache imports geometry cache data.
	PointCache bool
	// Deformation imports skin and blend shape deformation.
	Deformation bool
	// DeformationSkins imports skin deformation.
	DeformationSkins bool
	// DeformationShapes imports blend shapes.
	DeformationShapes bool
	// NormalizeWeights forces skin weight normalization.
	NormalizeWeights bool
	// KeepAttributesLocked respects locked attributes on merge.
	KeepAttributesLocked bool
	// SamplingRate selects the resampling source.
	SamplingRate SamplingRate
	// SetMayaFrameRate matches the scene frame rate to the file.
	SetMayaFrameRate bool
	// CustomSamplingRate is the rate used with SamplingRateCustom.
	CustomSamplingRate float64
	// CurveFilter applies curve filtering to imported animation.
	CurveFilter bool
	// Constraints imports supported constraints.
	Constraints bool
	// SkeletonDefinition selects the skeleton definition to apply.
	SkeletonDefinition SkeletonDefinition

	// Scene elements.

	// Cameras imports cameras.
	Cameras bool
	// Lights imports supported lights.
	Lights bool
	// Audio imports time editor audio clips and tracks.
	Audio bool

	// Units and axes.

	// AutomaticUnits lets the plug-in match the scene units.
	AutomaticUnits bool
	// ConvertUnitsTo scales the incoming file to this unit. Unset
	// resolves to the host scene units.
	ConvertUnitsTo ConvertUnit
	// AxisConversion enables axis conversion on import.
	AxisConversion bool
	// UpAxis converts the incoming file to this up axis. Unset resolves
	// to the host scene axis.
	UpAxis UpAxis
	// ForcedFileAxis overrides the axis the file claims. Dangerous; the
	// plug-in recommends leaving it disabled.
	ForcedFileAxis ForcedFileAxis

	// Advanced.

	// ShowWarningUI pops the warnings manager on the host.
	ShowWarningUI bool
	// GenerateLog writes plug-in log files on the host.
	GenerateLog bool
}

// NewImportOptions returns an import record holding the plug-in's factory
// defaults. Host-derived fields stay unset and resolve at apply time.
func NewImportOptions() *ImportOptions {
	o := &ImportOptions{}
	applyDefaults(o)
	return o
}

// Direction reports that the record configures the importer.
func (o *ImportOptions) Direction() Direction { return DirectionImport }

// Fields returns the record's fields bound to their property descriptors,
// in serialization order.
func (o *ImportOptions) Fields() []Field {
	return []Field{
		enumField("merge_mode", &impMergeMode, &o.MergeMode),
		boolField("smoothing_groups", &impSmoothingGroups, &o.SmoothingGroups),
		boolField("unlock_normals", &impUnlockNormals, &o.UnlockNormals),
		boolField("hard_edges", &impHardEdges, &o.HardEdges),
		boolField("blind_data", &impBlindData, &o.BlindData),
		boolField("remove_bad_polys", &impRemoveBadPolys, &o.RemoveBadPolys),
		boolField("animation", &impAnimation, &o.Animation),
		boolField("fill_timeline", &impFillTimeline, &o.FillTimeline),
		boolField("bake_animation_layers", &impBakeAnimationLayers, &o.BakeAnimationLayers),
		boolField("optical_markers", &impOpticalMarkers, &o.OpticalMarkers),
		enumField("quaternion_interpolation", &impQuaternion, &o.QuaternionInterpolation),
		boolField("protect_driven_keys", &impProtectDrivenKeys, &o.ProtectDrivenKeys),
		boolField("deforming_elements_to_joints", &impDeformNullsAsJoints, &o.DeformNullsAsJoints),
		boolField("update_pivots_from_nulls", &impNullsToPivot, &o.NullsToPivot),
		boolField("point_cache", &impPointCache, &o.PointCache),
		boolField("deformation", &impDeformation, &o.Deformation),
		boolField("deformation_skins", &impDeformationSkins, &o.DeformationSkins),
		boolField("deformation_shapes", &impDeformationShapes, &o.DeformationShapes),
		boolField("deformation_normalize_weights", &impNormalizeWeights, &o.NormalizeWeights),
		boolField("keep_attributes_locked", &impKeepAttributesLocked, &o.KeepAttributesLocked),
		enumField("sampling_rate", &impSamplingRate, &o.SamplingRate),
		boolField("set_maya_framerate", &impSetMayaFrameRate, &o.SetMayaFrameRate),
		doubleField("custom_sampling_rate", &impCustomSamplingRate, &o.CustomSamplingRate),
		boolField("curve_filter", &impCurveFilter, &o.CurveFilter),
		boolField("constraints", &impConstraints, &o.Constraints),
		enumField("skeleton_definition", &impSkeletonDefinition, &o.SkeletonDefinition),
		boolField("cameras", &impCameras, &o.Cameras),
		boolField("lights", &impLights, &o.Lights),
		boolField("audio", &impAudio, &o.Audio),
		boolField("automatic_units", &impAutomaticUnits, &o.AutomaticUnits),
		enumField("convert_units_to", &impConvertUnits, &o.ConvertUnitsTo),
		boolField("axis_conversion", &impAxisConversion, &o.AxisConversion),
		enumField("up_axis", &impUpAxis, &o.UpAxis),
		enumField("forced_file_axis", &impForcedFileAxis, &o.ForcedFileAxis),
		boolField("show_warning_ui", &impShowWarningUI, &o.ShowWarningUI),
		boolField("generate_log", &impGenerateLog, &o.GenerateLog),
	}
}
