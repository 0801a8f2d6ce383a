package mel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `FBX (TM) Plug-in version: 2020.3.4
PATH: Export|IncludeGrp|Geometry|SmoothingGroups ( TYPE: Bool ) ( VALUE: false )
PATH: Export|IncludeGrp|Geometry|GeometryNurbsSurfaceAs ( TYPE: Enum ) ( VALUE: NURBS )  (POSSIBLE VALUES: NURBS Interactive Display Mesh Software Render Mesh )
PATH: Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameStep ( TYPE: Integer ) ( VALUE: 1 )
PATH: Export|IncludeGrp|Animation|CurveFilter|CurveFilterApplyCstKeyRed|CurveFilterCstKeyRedTPrec ( TYPE: Number ) ( VALUE: 0.0001 )
PATH: Import|IncludeGrp|Animation|SamplingPanel|SamplingRateSelector ( TYPE: Enum ) ( VALUE: Scene )  (POSSIBLE VALUES: Scene File Custom )
not a property line
`

// TestParsePropertyDump_ExtractsProperties tests FBXProperties output parsing
func TestParsePropertyDump_ExtractsProperties(t *testing.T) {
	infos := ParsePropertyDump(sampleDump)
	require.Len(t, infos, 5, "Five property lines should parse, junk skipped")

	assert.Equal(t, "Export|IncludeGrp|Geometry|SmoothingGroups", infos[0].Path)
	assert.Equal(t, "Bool", infos[0].Type)
	assert.Equal(t, "false", infos[0].Value)
	assert.Nil(t, infos[0].Possible, "Non-enum properties carry no value list")

	assert.Equal(t, "Enum", infos[1].Type)
	assert.Equal(t, "NURBS", infos[1].Value)
	assert.Equal(t,
		[]string{"NURBS", "Interactive", "Display", "Mesh", "Software", "Render", "Mesh"},
		infos[1].Possible,
		"Possible values split on whitespace, matching the dump format")

	assert.Equal(t, "Integer", infos[2].Type)
	assert.Equal(t, "1", infos[2].Value)

	assert.Equal(t, "Number", infos[3].Type)
	assert.Equal(t, "0.0001", infos[3].Value)

	assert.Equal(t, "Import|IncludeGrp|Animation|SamplingPanel|SamplingRateSelector", infos[4].Path)
	assert.Equal(t, []string{"Scene", "File", "Custom"}, infos[4].Possible)
}

// TestParsePropertyDump_EmptyInput tests parsing degenerate dumps
func TestParsePropertyDump_EmptyInput(t *testing.T) {
	assert.Nil(t, ParsePropertyDump(""))
	assert.Nil(t, ParsePropertyDump("no properties here\nat all"))
}

// TestPropertyInfo_SideClassification tests export/import path detection
func TestPropertyInfo_SideClassification(t *testing.T) {
	exp := PropertyInfo{Path: "Export|IncludeGrp|Animation"}
	imp := PropertyInfo{Path: "Import|IncludeGrp|Animation"}

	assert.True(t, exp.IsExport())
	assert.False(t, exp.IsImport())
	assert.True(t, imp.IsImport())
	assert.False(t, imp.IsExport())
}
