package fbxprop

import (
	"fmt"
	"math"
	"strings"

	"mayafbx/internal/mel"
)

// Source identifies where a host-derived default is resolved from when an
// option field was left unset.
type Source int

const (
	SourceNone Source = iota
	SourceTimelineStart
	SourceTimelineEnd
	SourceSceneUnit
	SourceSceneUpAxis
	SourcePluginFileVersion
)

// Property describes one FBX plug-in property: its MEL command, value type
// and legal domain. Properties are immutable; the option records hold one
// descriptor per field.
type Property struct {
	// Command is the full MEL prefix, either "FBXProperty <path>" or a
	// dedicated command such as "FBXExportFileVersion".
	Command string

	Kind Kind

	// Flagless commands take their value directly, without "-v". The
	// plug-in has exactly two of these.
	Flagless bool

	// Min and Max bound numeric values when non-nil (inclusive).
	Min *float64
	Max *float64

	// Values is the closed set of legal strings for enum properties.
	Values []string

	// Since and Until delimit the Maya versions that know the property.
	// Zero means unbounded; Until is exclusive.
	Since int
	Until int

	// Default is the factory value, nil when host-derived.
	Default any

	// DefaultFrom names the host query that resolves the default when
	// Default is nil.
	DefaultFrom Source
}

// Path returns the property tree path for FBXProperty-style commands and ""
// for dedicated commands, which the FBXProperties dump does not list.
func (p *Property) Path() string {
	if rest, ok := strings.CutPrefix(p.Command, "FBXProperty "); ok {
		return rest
	}
	return ""
}

// AvailableIn reports whether the property exists in the given Maya version.
// Version 0 means the host version is unknown and the property is assumed
// present.
func (p *Property) AvailableIn(version int) bool {
	if version == 0 {
		return true
	}
	if p.Since != 0 && version < p.Since {
		return false
	}
	if p.Until != 0 && version >= p.Until {
		return false
	}
	return true
}

// Coerce converts v to the property's canonical value type, accepting the
// integer and float widths that decoders produce. It does not check the
// value domain.
func (p *Property) Coerce(v any) (any, error) {
	switch p.Kind {
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			if n == math.Trunc(n) {
				return int(n), nil
			}
		}
	case KindDouble:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case KindEnum, KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		if s, ok := v.(fmt.Stringer); ok {
			return s.String(), nil
		}
	}
	return nil, fmt.Errorf("expected %s value, got %T", p.Kind, v)
}

// Validate checks v against the property's type and domain. The record is
// never touched on failure; errors name the allowed domain.
func (p *Property) Validate(v any) error {
	cv, err := p.Coerce(v)
	if err != nil {
		return err
	}
	switch p.Kind {
	case KindInt:
		return p.checkRange(float64(cv.(int)), fmt.Sprintf("%d", cv))
	case KindDouble:
		return p.checkRange(cv.(float64), mel.FormatDouble(cv.(float64)))
	case KindEnum:
		s := cv.(string)
		for _, legal := range p.Values {
			if s == legal {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v, got %q", p.Values, s)
	}
	return nil
}

func (p *Property) checkRange(v float64, display string) error {
	switch {
	case p.Min != nil && p.Max != nil:
		if v < *p.Min || v > *p.Max {
			return fmt.Errorf("must be between %s and %s, got %s",
				mel.FormatDouble(*p.Min), mel.FormatDouble(*p.Max), display)
		}
	case p.Min != nil:
		if v < *p.Min {
			return fmt.Errorf("must be at least %s, got %s", mel.FormatDouble(*p.Min), display)
		}
	case p.Max != nil:
		if v > *p.Max {
			return fmt.Errorf("must be at most %s, got %s", mel.FormatDouble(*p.Max), display)
		}
	}
	return nil
}

// Format renders a validated value as the MEL literal the plug-in expects:
// booleans as true/false, strings quoted, numbers bare.
func (p *Property) Format(v any) (string, error) {
	cv, err := p.Coerce(v)
	if err != nil {
		return "", err
	}
	if err := p.Validate(cv); err != nil {
		return "", err
	}
	switch p.Kind {
	case KindBool:
		return mel.FormatBool(cv.(bool)), nil
	case KindInt:
		return mel.FormatInt(cv.(int)), nil
	case KindDouble:
		return mel.FormatDouble(cv.(float64)), nil
	default:
		return mel.Quote(cv.(string)), nil
	}
}

// SetCommand returns the full MEL statement assigning v to the property.
func (p *Property) SetCommand(v any) (string, error) {
	lit, err := p.Format(v)
	if err != nil {
		return "", err
	}
	if p.Flagless {
		return p.Command + " " + lit, nil
	}
	return p.Command + " -v " + lit, nil
}

// QueryCommand returns the MEL statement reading the property's current
// value from the host.
func (p *Property) QueryCommand() string {
	return p.Command + " -q"
}

// ParseText converts CLI or host reply text into a typed value. Booleans
// accept both the "1"/"0" the plug-in answers queries with and the spelled
// forms, numbers go through strconv, enum and string values pass verbatim.
func (p *Property) ParseText(s string) (any, error) {
	switch p.Kind {
	case KindBool:
		return mel.ParseBool(s)
	case KindInt:
		return mel.ParseInt(s)
	case KindDouble:
		return mel.ParseFloat(s)
	default:
		return s, nil
	}
}
