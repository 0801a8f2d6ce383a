package options

import "slices"

// The enum types below mirror the closed value sets the FBX plug-in accepts
// for its Enum properties. The spellings are the plug-in's own and go on the
// wire verbatim.

// NurbsSurfaceAs selects the NURBS conversion applied on export.
type NurbsSurfaceAs string

const (
	// NurbsSurfaceAsNurbs exports NURBS geometry unconverted.
	NurbsSurfaceAsNurbs NurbsSurfaceAs = "NURBS"
	// NurbsSurfaceAsInteractiveDisplayMesh converts using the NURBS
	// display settings.
	NurbsSurfaceAsInteractiveDisplayMesh NurbsSurfaceAs = "Interactive Display Mesh"
	// NurbsSurfaceAsSoftwareRenderMesh converts using the NURBS render
	// settings.
	NurbsSurfaceAsSoftwareRenderMesh NurbsSurfaceAs = "Software Render Mesh"
)

var nurbsSurfaceAsValues = []string{
	string(NurbsSurfaceAsNurbs),
	string(NurbsSurfaceAsInteractiveDisplayMesh),
	string(NurbsSurfaceAsSoftwareRenderMesh),
}

// IsValid reports whether the value is a member of the closed set.
func (v NurbsSurfaceAs) IsValid() bool { return slices.Contains(nurbsSurfaceAsValues, string(v)) }

// String returns the wire spelling.
func (v NurbsSurfaceAs) String() string { return string(v) }

// QuaternionInterpolation selects how quaternion interpolation is handled.
type QuaternionInterpolation string

const (
	// QuaternionResampleAsEuler converts and resamples quaternion
	// interpolation into Euler curves.
	QuaternionResampleAsEuler QuaternionInterpolation = "Resample As Euler Interpolation"
	// QuaternionRetain keeps quaternion interpolation types.
	QuaternionRetain QuaternionInterpolation = "Retain Quaternion Interpolation"
	// QuaternionSetAsEuler retypes quaternion keys as Euler without
	// resampling the curves.
	QuaternionSetAsEuler QuaternionInterpolation = "Set As Euler Interpolation"
)

var quaternionInterpolationValues = []string{
	string(QuaternionResampleAsEuler),
	string(QuaternionRetain),
	string(QuaternionSetAsEuler),
}

// IsValid reports whether the value is a member of the closed set.
func (v QuaternionInterpolation) IsValid() bool {
	return slices.Contains(quaternionInterpolationValues, string(v))
}

// String returns the wire spelling.
func (v QuaternionInterpolation) String() string { return string(v) }

// ConvertUnit is a linear unit the plug-in can scale to.
type ConvertUnit string

const (
	UnitMillimeters ConvertUnit = "mm"
	UnitCentimeters ConvertUnit = "cm"
	UnitDecimeters  ConvertUnit = "dm"
	UnitMeters      ConvertUnit = "m"
	UnitKilometers  ConvertUnit = "km"
	UnitInches      ConvertUnit = "In"
	UnitFeet        ConvertUnit = "ft"
	UnitYards       ConvertUnit = "yd"
	UnitMiles       ConvertUnit = "mi"
)

var convertUnitValues = []string{
	string(UnitMillimeters),
	string(UnitCentimeters),
	string(UnitDecimeters),
	string(UnitMeters),
	string(UnitKilometers),
	string(UnitInches),
	string(UnitFeet),
	string(UnitYards),
	string(UnitMiles),
}

// IsValid reports whether the value is a member of the closed set.
func (v ConvertUnit) IsValid() bool { return slices.Contains(convertUnitValues, string(v)) }

// String returns the wire spelling.
func (v ConvertUnit) String() string { return string(v) }

// ConvertUnitFromScene maps a "currentUnit -q -linear" reply to the
// plug-in's spelling. Maya reports inches as "in" where the plug-in wants
// "In"; decimeters have no Maya unit and never come from a scene.
func ConvertUnitFromScene(reply string) (ConvertUnit, bool) {
	switch reply {
	case "mm":
		return UnitMillimeters, true
	case "cm":
		return UnitCentimeters, true
	case "m":
		return UnitMeters, true
	case "km":
		return UnitKilometers, true
	case "in":
		return UnitInches, true
	case "ft":
		return UnitFeet, true
	case "yd":
		return UnitYards, true
	case "mi":
		return UnitMiles, true
	}
	return "", false
}

// UpAxis is the world up axis written to the file.
type UpAxis string

const (
	UpAxisY UpAxis = "Y"
	UpAxisZ UpAxis = "Z"
)

var upAxisValues = []string{string(UpAxisY), string(UpAxisZ)}

// IsValid reports whether the value is a member of the closed set.
func (v UpAxis) IsValid() bool { return slices.Contains(upAxisValues, string(v)) }

// String returns the wire spelling.
func (v UpAxis) String() string { return string(v) }

// UpAxisFromScene maps an "upAxis -q -axis" reply to the plug-in's spelling.
func UpAxisFromScene(reply string) (UpAxis, bool) {
	switch reply {
	case "y", "Y":
		return UpAxisY, true
	case "z", "Z":
		return UpAxisZ, true
	}
	return "", false
}

// AxisConversionMethod selects how an axis conversion is carried out.
type AxisConversionMethod string

const (
	// AxisConversionNone leaves exported data unaffected.
	AxisConversionNone AxisConversionMethod = "none"
	// AxisConversionAnimation recalculates animation curves for the new
	// world system.
	AxisConversionAnimation AxisConversionMethod = "convertAnimation"
	// AxisConversionAddRoot adds a Fbx_Root transform carrying the
	// conversion.
	AxisConversionAddRoot AxisConversionMethod = "addFbxRoot"
)

var axisConversionMethodValues = []string{
	string(AxisConversionNone),
	string(AxisConversionAnimation),
	string(AxisConversionAddRoot),
}

// IsValid reports whether the value is a member of the closed set.
func (v AxisConversionMethod) IsValid() bool {
	return slices.Contains(axisConversionMethodValues, string(v))
}

// String returns the wire spelling.
func (v AxisConversionMethod) String() string { return string(v) }

// FileFormat selects binary or plain text FBX.
type FileFormat string

const (
	FileFormatBinary FileFormat = "Binary"
	FileFormatASCII  FileFormat = "ASCII"
)

var fileFormatValues = []string{string(FileFormatBinary), string(FileFormatASCII)}

// IsValid reports whether the value is a member of the closed set.
func (v FileFormat) IsValid() bool { return slices.Contains(fileFormatValues, string(v)) }

// String returns the wire spelling.
func (v FileFormat) String() string { return string(v) }

// FileVersion is an FBX file format version.
type FileVersion string

const (
	FileVersion2020 FileVersion = "FBX202000"
	FileVersion2019 FileVersion = "FBX201900"
	FileVersion2018 FileVersion = "FBX201800"
	FileVersion2016 FileVersion = "FBX201600"
	FileVersion2014 FileVersion = "FBX201400"
	FileVersion2013 FileVersion = "FBX201300"
	FileVersion2012 FileVersion = "FBX201200"
	FileVersion2011 FileVersion = "FBX201100"
	FileVersion2010 FileVersion = "FBX201000"
	FileVersion2009 FileVersion = "FBX200900"
	FileVersion2006 FileVersion = "FBX200611"
)

var fileVersionValues = []string{
	string(FileVersion2020),
	string(FileVersion2019),
	string(FileVersion2018),
	string(FileVersion2016),
	string(FileVersion2014),
	string(FileVersion2013),
	string(FileVersion2012),
	string(FileVersion2011),
	string(FileVersion2010),
	string(FileVersion2009),
	string(FileVersion2006),
}

// IsValid reports whether the value is a member of the closed set.
func (v FileVersion) IsValid() bool { return slices.Contains(fileVersionValues, string(v)) }

// String returns the wire spelling.
func (v FileVersion) String() string { return string(v) }

// MergeMode selects how imported data lands in the scene.
type MergeMode string

const (
	// MergeModeAdd adds file content to the scene, duplicating existing
	// elements.
	MergeModeAdd MergeMode = "add"
	// MergeModeMerge adds new content and updates animation on matching
	// objects.
	MergeModeMerge MergeMode = "merge"
	// MergeModeUpdateAnimation only replaces animation on nodes of the
	// same name and type.
	MergeModeUpdateAnimation MergeMode = "exmerge"
	// MergeModeUpdateKeyedTransforms preserves un-keyed transforms and
	// only applies keyed animation from the file.
	MergeModeUpdateKeyedTransforms MergeMode = "exmergekeyedxforms"
)

var mergeModeValues = []string{
	string(MergeModeAdd),
	string(MergeModeMerge),
	string(MergeModeUpdateAnimation),
	string(MergeModeUpdateKeyedTransforms),
}

// IsValid reports whether the value is a member of the closed set.
func (v MergeMode) IsValid() bool { return slices.Contains(mergeModeValues, string(v)) }

// String returns the wire spelling.
func (v MergeMode) String() string { return string(v) }

// SamplingRate is the source of the resampling rate on import.
type SamplingRate string

const (
	// SamplingRateScene resamples at the scene working units.
	SamplingRateScene SamplingRate = "Scene"
	// SamplingRateFile resamples at the rate the file defines.
	SamplingRateFile SamplingRate = "File"
	// SamplingRateCustom resamples at a caller supplied rate.
	SamplingRateCustom SamplingRate = "Custom"
)

var samplingRateValues = []string{
	string(SamplingRateScene),
	string(SamplingRateFile),
	string(SamplingRateCustom),
}

// IsValid reports whether the value is a member of the closed set.
func (v SamplingRate) IsValid() bool { return slices.Contains(samplingRateValues, string(v)) }

// String returns the wire spelling.
func (v SamplingRate) String() string { return string(v) }

// SkeletonDefinition selects the skeleton definition applied on import. The
// property command does not support FullBody IK.
type SkeletonDefinition string

const (
	SkeletonDefinitionNone    SkeletonDefinition = "None"
	SkeletonDefinitionHumanIK SkeletonDefinition = "HumanIK"
)

var skeletonDefinitionValues = []string{
	string(SkeletonDefinitionNone),
	string(SkeletonDefinitionHumanIK),
}

// IsValid reports whether the value is a member of the closed set.
func (v SkeletonDefinition) IsValid() bool {
	return slices.Contains(skeletonDefinitionValues, string(v))
}

// String returns the wire spelling.
func (v SkeletonDefinition) String() string { return string(v) }

// ForcedFileAxis overrides the incoming file's axis on import.
type ForcedFileAxis string

const (
	ForcedFileAxisDisabled ForcedFileAxis = "disabled"
	ForcedFileAxisY        ForcedFileAxis = "y"
	ForcedFileAxisZ        ForcedFileAxis = "z"
)

var forcedFileAxisValues = []string{
	string(ForcedFileAxisDisabled),
	string(ForcedFileAxisY),
	string(ForcedFileAxisZ),
}

// IsValid reports whether the value is a member of the closed set.
func (v ForcedFileAxis) IsValid() bool { return slices.Contains(forcedFileAxisValues, string(v)) }

// String returns the wire spelling.
func (v ForcedFileAxis) String() string { return string(v) }
