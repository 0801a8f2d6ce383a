package fbxprop

import (
	"fmt"
	"strings"

	"mayafbx/internal/mel"
)

// FindingLevel grades a drift finding.
type FindingLevel int

const (
	// LevelInfo marks differences that do not invalidate the table, such
	// as host properties the table does not model.
	LevelInfo FindingLevel = iota

	// LevelError marks disagreements between the table and the host about
	// a modeled property.
	LevelError
)

// String returns the level name for display.
func (l FindingLevel) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Finding is one disagreement between the compiled property table and a
// FBXProperties dump taken from a live host.
type Finding struct {
	Level   FindingLevel
	Path    string
	Message string
}

// Diff compares the modeled properties against a host dump. Dedicated
// commands without a property tree path are skipped, since the dump does
// not list them. Host properties missing from props are reported at info
// level, modeled properties the host does not report likewise; type and
// enum-domain disagreements are errors.
func Diff(props []*Property, dump []mel.PropertyInfo) []Finding {
	byPath := make(map[string]mel.PropertyInfo, len(dump))
	for _, info := range dump {
		byPath[info.Path] = info
	}

	modeled := make(map[string]bool)
	var findings []Finding
	for _, p := range props {
		path := p.Path()
		if path == "" {
			continue
		}
		modeled[path] = true

		info, ok := byPath[path]
		if !ok {
			findings = append(findings, Finding{
				Level:   LevelInfo,
				Path:    path,
				Message: "not reported by host",
			})
			continue
		}

		kind, known := KindFromDumpType(info.Type)
		if !known {
			findings = append(findings, Finding{
				Level:   LevelError,
				Path:    path,
				Message: fmt.Sprintf("host reports unknown type %q", info.Type),
			})
			continue
		}
		if kind != p.Kind {
			findings = append(findings, Finding{
				Level:   LevelError,
				Path:    path,
				Message: fmt.Sprintf("type mismatch: modeled %s, host reports %s", p.Kind, kind),
			})
			continue
		}
		if p.Kind == KindEnum && len(info.Possible) > 0 {
			want := enumTokens(p.Values)
			got := strings.Join(info.Possible, " ")
			if want != got {
				findings = append(findings, Finding{
					Level:   LevelError,
					Path:    path,
					Message: fmt.Sprintf("enum domain mismatch: modeled [%s], host reports [%s]", want, got),
				})
			}
		}
	}

	for _, info := range dump {
		if !modeled[info.Path] {
			findings = append(findings, Finding{
				Level:   LevelInfo,
				Path:    info.Path,
				Message: "host property not modeled",
			})
		}
	}
	return findings
}

// HasErrors reports whether any finding is error level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Level == LevelError {
			return true
		}
	}
	return false
}

// enumTokens flattens enum values into the whitespace-token form the dump
// uses, where multi-word values are indistinguishable from separate ones.
func enumTokens(values []string) string {
	var tokens []string
	for _, v := range values {
		tokens = append(tokens, strings.Fields(v)...)
	}
	return strings.Join(tokens, " ")
}
