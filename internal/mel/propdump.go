package mel

import (
	"regexp"
	"strings"
)

// PropertyInfo is one line of the FBXProperties dump: the current state of a
// single plug-in property on the host.
type PropertyInfo struct {
	Path     string   // e.g. "Export|IncludeGrp|Geometry|SmoothingGroups"
	Type     string   // Bool, Integer, Number, Enum, String, ...
	Value    string   // current value, verbatim
	Possible []string // legal values, enum properties only
}

// IsExport reports whether the property belongs to the export side of the
// plug-in.
func (p PropertyInfo) IsExport() bool {
	return strings.HasPrefix(p.Path, "Export|")
}

// IsImport reports whether the property belongs to the import side of the
// plug-in.
func (p PropertyInfo) IsImport() bool {
	return strings.HasPrefix(p.Path, "Import|")
}

var propertyLine = regexp.MustCompile(
	`^PATH:\s(\S+)\s+` +
		`\(\sTYPE:\s(\w+)\s\)\s+` +
		`\(\sVALUE:\s([^)]+)\s\)` +
		`(?:\s+\(POSSIBLE VALUES: ([^)]+)\s\))?`,
)

// ParsePropertyDump parses the output of the FBXProperties command. Lines
// that do not describe a property are skipped.
func ParsePropertyDump(dump string) []PropertyInfo {
	var infos []PropertyInfo
	for _, line := range strings.Split(dump, "\n") {
		m := propertyLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		info := PropertyInfo{
			Path:  m[1],
			Type:  m[2],
			Value: strings.TrimSpace(m[3]),
		}
		if m[4] != "" {
			info.Possible = strings.Fields(m[4])
		}
		infos = append(infos, info)
	}
	return infos
}
