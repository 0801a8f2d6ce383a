package options

import "mayafbx/internal/core/fbxprop"

// Export property descriptors, one per record field, in serialization
// order. Paths and defaults follow the plug-in's "Autodesk Media &
// Entertainment" preset, which FBXResetExport restores.
var (
	expSmoothingGroups = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|SmoothingGroups",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expHardEdges = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|expHardEdges",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expTangents = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|TangentsandBinormals",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expSmoothMesh = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|SmoothMesh",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expSelectionSet = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|SelectionSet",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expBlindData = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|BlindData",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expConvertToNull = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|AnimationOnly",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expPreserveInstances = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|Instances",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expReferencedAssetContent = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|ContainerObjects",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expTriangulate = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|Triangulate",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expNurbsSurfaceAs = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Geometry|GeometryNurbsSurfaceAs",
		Kind:    fbxprop.KindEnum, Values: nurbsSurfaceAsValues,
		Default: string(NurbsSurfaceAsNurbs),
	}
	expAnimation = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expUseSceneName = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|ExtraGrp|UseSceneName",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expRemoveSingleKey = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|ExtraGrp|RemoveSingleKey",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expQuaternion = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|ExtraGrp|Quaternion",
		Kind:    fbxprop.KindEnum, Values: quaternionInterpolationValues,
		Default: string(QuaternionResampleAsEuler),
	}
	expBakeComplexAnimation = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expBakeFrameStart = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameStart",
		Kind:    fbxprop.KindInt, DefaultFrom: fbxprop.SourceTimelineStart,
	}
	expBakeFrameEnd = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameEnd",
		Kind:    fbxprop.KindInt, DefaultFrom: fbxprop.SourceTimelineEnd,
	}
	expBakeFrameStep = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameStep",
		Kind:    fbxprop.KindInt, Default: 1, Min: ptr(1.0),
	}
	expBakeResampleAll = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|ResampleAnimationCurves",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expDeformation = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|Deformation",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expDeformationSkins = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|Deformation|Skins",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expDeformationShapes = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|Deformation|Shape",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expCurveFilter = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expConstantKeyReducer = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expKeyReducerTPrec = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|CurveFilterCstKeyRedTPrec",
		Kind:    fbxprop.KindDouble, Default: 0.0001, Min: ptr(0.0),
	}
	expKeyReducerRPrec = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|CurveFilterCstKeyRedRPrec",
		Kind:    fbxprop.KindDouble, Default: 0.009, Min: ptr(0.0),
	}
	expKeyReducerSPrec = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|CurveFilterCstKeyRedSPrec",
		Kind:    fbxprop.KindDouble, Default: 0.004, Min: ptr(0.0),
	}
	expKeyReducerOPrec = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|CurveFilterCstKeyRedOPrec",
		Kind:    fbxprop.KindDouble, Default: 0.009, Min: ptr(0.0),
	}
	expKeyReducerAutoTangentsOnly = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|AutoTangentsOnly",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expConstraints = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|ConstraintsGrp|Constraint",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expSkeletonDefinitions = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Animation|ConstraintsGrp|Character",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expCameras = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|CameraGrp|Camera",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expLights = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|LightGrp|Light",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expAudio = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|Audio",
		Kind:    fbxprop.KindBool, Default: true, Since: 2019,
	}
	expEmbedMedia = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|EmbedTextureGrp|EmbedTexture",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expBindPose = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|BindPose",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expPivotToNulls = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|PivotToNulls",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expBypassRrsInheritance = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|BypassRrsInheritance",
		Kind:    fbxprop.KindBool, Default: false,
	}
	expIncludeChildren = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|InputConnectionsGrp|IncludeChildren",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expInputConnections = fbxprop.Property{
		Command: "FBXProperty Export|IncludeGrp|InputConnectionsGrp|InputConnections",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expAutomaticUnits = fbxprop.Property{
		Command: "FBXProperty Export|AdvOptGrp|UnitsGrp|DynamicScaleConversion",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expConvertUnits = fbxprop.Property{
		Command: "FBXExportConvertUnitString",
		Kind:    fbxprop.KindEnum, Values: convertUnitValues,
		DefaultFrom: fbxprop.SourceSceneUnit,
	}
	expUpAxis = fbxprop.Property{
		Command: "FBXProperty Export|AdvOptGrp|AxisConvGrp|UpAxis",
		Kind:    fbxprop.KindEnum, Values: upAxisValues,
		DefaultFrom: fbxprop.SourceSceneUpAxis,
	}
	expAxisConversionMethod = fbxprop.Property{
		Command: "FBXExportAxisConversionMethod",
		Kind:    fbxprop.KindEnum, Values: axisConversionMethodValues,
		Default: string(AxisConversionAnimation), Flagless: true,
	}
	expShowWarningUI = fbxprop.Property{
		Command: "FBXProperty Export|AdvOptGrp|UI|ShowWarningsManager",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expGenerateLog = fbxprop.Property{
		Command: "FBXProperty Export|AdvOptGrp|UI|GenerateLogData",
		Kind:    fbxprop.KindBool, Default: true,
	}
	expFileFormat = fbxprop.Property{
		Command: "FBXProperty Export|AdvOptGrp|Fbx|AsciiFbx",
		Kind:    fbxprop.KindEnum, Values: fileFormatValues,
		Default: string(FileFormatBinary),
	}
	expFileVersion = fbxprop.Property{
		Command: "FBXExportFileVersion",
		Kind:    fbxprop.KindEnum, Values: fileVersionValues,
		DefaultFrom: fbxprop.SourcePluginFileVersion,
	}
	expDeleteOriginalTakeOnSplit = fbxprop.Property{
		Command: "FBXExportDeleteOriginalTakeOnSplitAnimation",
		Kind:    fbxprop.KindBool, Default: false,
	}
)

func ptr(v float64) *float64 { return &v }

// ExportOptions configures one FBX export. Construct with NewExportOptions
// to start from the plug-in's factory defaults; a zero value leaves enum
// fields empty and fails validation.
type ExportOptions struct {
	// Geometry.

	// SmoothingGroups converts edge information to smoothing groups.
	SmoothingGroups bool
	// HardEdges splits vertex normals on edge continuity. Alters UV maps
	// permanently.
	HardEdges bool
	// Tangents exports tangent and binormal data. Requires UVs and
	// triangle-only meshes.
	Tangents bool
	// SmoothMesh exports smooth mesh preview attributes instead of
	// tessellating.
	SmoothMesh bool
	// SelectionSet includes selection sets in the file.
	SelectionSet bool
	// BlindData exports per-component blind data.
	BlindData bool
	// ConvertToNull replaces geometry with nulls, keeping animation.
	ConvertToNull bool
	// PreserveInstances keeps instances instead of converting them to
	// objects.
	PreserveInstances bool
	// ReferencedAssetContent exports the content of referenced assets
	// instead of the reference itself.
	ReferencedAssetContent bool
	// Triangulate tessellates exported polygons.
	Triangulate bool
	// ConvertNurbsSurfaceAs controls NURBS conversion.
	ConvertNurbsSurfaceAs NurbsSurfaceAs

	// Animation.

	// Animation exports animation at all.
	Animation bool
	// UseSceneName names the animation take after the scene instead of
	// "Take 001".
	UseSceneName bool
	// RemoveSingleKey drops curves holding a single key at default value.
	RemoveSingleKey bool
	// QuaternionInterpolation controls quaternion rotation handling.
	QuaternionInterpolation QuaternionInterpolation
	// BakeComplexAnimation bakes unsupported constructs (constraints,
	// expressions) into keyframes over the bake range.
	BakeComplexAnimation bool
	// BakeAnimationStart is the first baked frame. Unset resolves to the
	// host timeline start.
	BakeAnimationStart *int
	// BakeAnimationEnd is the last baked frame. Unset resolves to the
	// host timeline end.
	BakeAnimationEnd *int
	// BakeAnimationStep is the bake sampling step in frames.
	BakeAnimationStep int
	// BakeResampleAll bakes every animation curve, supported or not.
	BakeResampleAll bool
	// Deformation exports skin and blend shape deformation.
	Deformation bool
	// DeformationSkins exports skin deformation.
	DeformationSkins bool
	// DeformationShapes exports blend shapes.
	DeformationShapes bool
	// CurveFilter applies the key reducing filters below on export.
	CurveFilter bool
	// ConstantKeyReducer removes redundant keys on constant curves.
	ConstantKeyReducer bool
	// KeyReducerTranslationPrecision is the reducer tolerance for
	// translation curves.
	KeyReducerTranslationPrecision float64
	// KeyReducerRotationPrecision is the reducer tolerance for rotation
	// curves.
	KeyReducerRotationPrecision float64
	// KeyReducerScalePrecision is the reducer tolerance for scale curves.
	KeyReducerScalePrecision float64
	// KeyReducerOtherPrecision is the reducer tolerance for remaining
	// curves.
	KeyReducerOtherPrecision float64
	// KeyReducerAutoTangentsOnly converts resulting keys to auto tangents.
	KeyReducerAutoTangentsOnly bool
	// Constraints exports supported constraints.
	Constraints bool
	// SkeletonDefinitions exports HumanIK skeleton definitions.
	SkeletonDefinitions bool

	// Scene elements.

	// Cameras exports cameras.
	Cameras bool
	// Lights exports supported light types.
	Lights bool
	// Audio exports time editor audio clips and tracks.
	Audio bool
	// EmbedMedia embeds textures in the file.
	EmbedMedia bool
	// BindPose exports bind poses.
	BindPose bool
	// PivotToNulls converts pivots to null parents.
	PivotToNulls bool
	// BypassRrsInheritance bypasses RrS scale inheritance.
	BypassRrsInheritance bool
	// IncludeChildren exports children of selected elements.
	IncludeChildren bool
	// InputConnections exports input connections of selected elements.
	InputConnections bool

	// Units and axes.

	// AutomaticUnits lets the plug-in match the scene units, ignoring
	// ConvertUnitsTo.
	AutomaticUnits bool
	// ConvertUnitsTo scales the file to this unit. Unset resolves to the
	// host scene units.
	ConvertUnitsTo ConvertUnit
	// UpAxis is the file up axis. Unset resolves to the host scene axis.
	UpAxis UpAxis
	// AxisConversionMethod controls how an axis change is applied.
	AxisConversionMethod AxisConversionMethod

	// Advanced.

	// ShowWarningUI pops the warnings manager on the host.
	ShowWarningUI bool
	// GenerateLog writes plug-in log files on the host.
	GenerateLog bool
	// FileFormat selects binary or ASCII FBX.
	FileFormat FileFormat
	// FileVersion pins the file format version. Unset resolves to the
	// plug-in's current default.
	FileVersion FileVersion
	// DeleteOriginalTakeOnSplitAnimation drops the source take when
	// animation is split into takes.
	DeleteOriginalTakeOnSplitAnimation bool
}

// NewExportOptions returns an export record holding the plug-in's factory
// defaults. Host-derived fields (bake range, units, up axis, file version)
// stay unset and resolve on the host at apply time.
func NewExportOptions() *ExportOptions {
	o := &ExportOptions{}
	applyDefaults(o)
	return o
}

// Direction reports that the record configures the exporter.
func (o *ExportOptions) Direction() Direction { return DirectionExport }

// Fields returns the record's fields bound to their property descriptors,
// in serialization order.
func (o *ExportOptions) Fields() []Field {
	return []Field{
		boolField("smoothing_groups", &expSmoothingGroups, &o.SmoothingGroups),
		boolField("hard_edges", &expHardEdges, &o.HardEdges),
		boolField("tangents", &expTangents, &o.Tangents),
		boolField("smooth_mesh", &expSmoothMesh, &o.SmoothMesh),
		boolField("selection_set", &expSelectionSet, &o.SelectionSet),
		boolField("blind_data", &expBlindData, &o.BlindData),
		boolField("convert_to_null", &expConvertToNull, &o.ConvertToNull),
		boolField("preserve_instances", &expPreserveInstances, &o.PreserveInstances),
		boolField("referenced_asset_content", &expReferencedAssetContent, &o.ReferencedAssetContent),
		boolField("triangulate", &expTriangulate, &o.Triangulate),
		enumField("convert_nurbs_surface_as", &expNurbsSurfaceAs, &o.ConvertNurbsSurfaceAs),
		boolField("animation", &expAnimation, &o.Animation),
		boolField("use_scene_name", &expUseSceneName, &o.UseSceneName),
		boolField("remove_single_key", &expRemoveSingleKey, &o.RemoveSingleKey),
		enumField("quaternion_interpolation", &expQuaternion, &o.QuaternionInterpolation),
		boolField("bake_complex_animation", &expBakeComplexAnimation, &o.BakeComplexAnimation),
		optIntField("bake_animation_start", &expBakeFrameStart, &o.BakeAnimationStart),
		optIntField("bake_animation_end", &expBakeFrameEnd, &o.BakeAnimationEnd),
		intField("bake_animation_step", &expBakeFrameStep, &o.BakeAnimationStep),
		boolField("bake_resample_all", &expBakeResampleAll, &o.BakeResampleAll),
		boolField("deformation", &expDeformation, &o.Deformation),
		boolField("deformation_skins", &expDeformationSkins, &o.DeformationSkins),
		boolField("deformation_shapes", &expDeformationShapes, &o.DeformationShapes),
		boolField("curve_filter", &expCurveFilter, &o.CurveFilter),
		boolField("constant_key_reducer", &expConstantKeyReducer, &o.ConstantKeyReducer),
		doubleField("constant_key_reducer_translation_precision", &expKeyReducerTPrec, &o.KeyReducerTranslationPrecision),
		doubleField("constant_key_reducer_rotation_precision", &expKeyReducerRPrec, &o.KeyReducerRotationPrecision),
		doubleField("constant_key_reducer_scale_precision", &expKeyReducerSPrec, &o.KeyReducerScalePrecision),
		doubleField("constant_key_reducer_other_precision", &expKeyReducerOPrec, &o.KeyReducerOtherPrecision),
		boolField("constant_key_reducer_auto_tangents_only", &expKeyReducerAutoTangentsOnly, &o.KeyReducerAutoTangentsOnly),
		boolField("constraints", &expConstraints, &o.Constraints),
		boolField("skeleton_definition", &expSkeletonDefinitions, &o.SkeletonDefinitions),
		boolField("cameras", &expCameras, &o.Cameras),
		boolField("lights", &expLights, &o.Lights),
		boolField("audio", &expAudio, &o.Audio),
		boolField("embed_media", &expEmbedMedia, &o.EmbedMedia),
		boolField("bind_pose", &expBindPose, &o.BindPose),
		boolField("pivot_to_nulls", &expPivotToNulls, &o.PivotToNulls),
		boolField("bypass_rrs_inheritance", &expBypassRrsInheritance, &o.BypassRrsInheritance),
		boolField("include_children", &expIncludeChildren, &o.IncludeChildren),
		boolField("input_connections", &expInputConnections, &o.InputConnections),
		boolField("automatic_units", &expAutomaticUnits, &o.AutomaticUnits),
		enumField("convert_units_to", &expConvertUnits, &o.ConvertUnitsTo),
		enumField("up_axis", &expUpAxis, &o.UpAxis),
		enumField("axis_conversion_method", &expAxisConversionMethod, &o.AxisConversionMethod),
		boolField("show_warning_ui", &expShowWarningUI, &o.ShowWarningUI),
		boolField("generate_log", &expGenerateLog, &o.GenerateLog),
		enumField("file_format", &expFileFormat, &o.FileFormat),
		enumField("file_version", &expFileVersion, &o.FileVersion),
		boolField("delete_original_take_on_split_animation", &expDeleteOriginalTakeOnSplit, &o.DeleteOriginalTakeOnSplitAnimation),
	}
}
