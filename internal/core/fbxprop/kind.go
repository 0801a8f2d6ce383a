// Package fbxprop models single FBX plug-in properties: their value type,
// legal domain, availability window and MEL command form. It is the static
// table layer that the option records in internal/core/options are built on.
package fbxprop

// Kind is the value type of a plug-in property.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindEnum
	KindString
)

// String returns the kind name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	}
	return "unknown"
}

// KindFromDumpType maps a TYPE token from the FBXProperties dump to a Kind.
func KindFromDumpType(s string) (Kind, bool) {
	switch s {
	case "Bool":
		return KindBool, true
	case "Integer":
		return KindInt, true
	case "Number", "Double", "Float":
		return KindDouble, true
	case "Enum":
		return KindEnum, true
	case "String":
		return KindString, true
	}
	return 0, false
}
