// Package options holds the typed export and import records for the FBX
// plug-in. Each record field is bound to one plug-in property through a
// descriptor table; records validate field by field and serialize to an
// ordered MEL command sequence.
package options

import (
	"fmt"

	"mayafbx/internal/core/fbxprop"
)

// Direction tells which side of the plug-in a record configures.
type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

// IsValid reports whether the direction is known.
func (d Direction) IsValid() bool {
	return d == DirectionExport || d == DirectionImport
}

// String returns the direction name.
func (d Direction) String() string { return string(d) }

// Field binds one record field to its property descriptor. Get returns the
// current value, nil when the field is unset and resolves from the host.
// Set validates first and leaves the record untouched on failure.
type Field struct {
	Name string
	Prop *fbxprop.Property
	Get  func() any
	Set  func(any) error
}

// Record is a flat collection of named option fields in a fixed order.
type Record interface {
	Direction() Direction
	Fields() []Field
}

func checked(prop *fbxprop.Property, v any) (any, error) {
	cv, err := prop.Coerce(v)
	if err != nil {
		return nil, err
	}
	if err := prop.Validate(cv); err != nil {
		return nil, err
	}
	return cv, nil
}

func boolField(name string, prop *fbxprop.Property, p *bool) Field {
	return Field{
		Name: name,
		Prop: prop,
		Get:  func() any { return *p },
		Set: func(v any) error {
			cv, err := checked(prop, v)
			if err != nil {
				return err
			}
			*p = cv.(bool)
			return nil
		},
	}
}

func intField(name string, prop *fbxprop.Property, p *int) Field {
	return Field{
		Name: name,
		Prop: prop,
		Get:  func() any { return *p },
		Set: func(v any) error {
			cv, err := checked(prop, v)
			if err != nil {
				return err
			}
			*p = cv.(int)
			return nil
		},
	}
}

// optIntField is an integer field whose zero state is "resolve from host".
func optIntField(name string, prop *fbxprop.Property, p **int) Field {
	return Field{
		Name: name,
		Prop: prop,
		Get: func() any {
			if *p == nil {
				return nil
			}
			return **p
		},
		Set: func(v any) error {
			cv, err := checked(prop, v)
			if err != nil {
				return err
			}
			n := cv.(int)
			*p = &n
			return nil
		},
	}
}

func doubleField(name string, prop *fbxprop.Property, p *float64) Field {
	return Field{
		Name: name,
		Prop: prop,
		Get:  func() any { return *p },
		Set: func(v any) error {
			cv, err := checked(prop, v)
			if err != nil {
				return err
			}
			*p = cv.(float64)
			return nil
		},
	}
}

// enumField covers the typed string fields. An empty value on a property
// with a host-derived default reads as unset.
func enumField[E ~string](name string, prop *fbxprop.Property, p *E) Field {
	return Field{
		Name: name,
		Prop: prop,
		Get: func() any {
			if *p == "" && prop.DefaultFrom != fbxprop.SourceNone {
				return nil
			}
			return string(*p)
		},
		Set: func(v any) error {
			cv, err := checked(prop, v)
			if err != nil {
				return err
			}
			*p = E(cv.(string))
			return nil
		},
	}
}

// applyDefaults loads every static table default into the record. Table
// defaults are valid by construction; a failure means the table itself is
// broken.
func applyDefaults(r Record) {
	for _, f := range r.Fields() {
		if f.Prop.Default == nil {
			continue
		}
		if err := f.Set(f.Prop.Default); err != nil {
			panic(fmt.Sprintf("options: invalid default for %s: %v", f.Name, err))
		}
	}
}

// Lookup returns the named field of a record.
func Lookup(r Record, name string) (Field, bool) {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// SetField assigns a typed value to the named field. The record is left
// untouched when the name is unknown or the value fails validation.
func SetField(r Record, name string, value any) error {
	f, ok := Lookup(r, name)
	if !ok {
		return fmt.Errorf("unknown %s field %q", r.Direction(), name)
	}
	if err := f.Set(value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// SetFieldText parses flag or host reply text into the named field using
// the property's value type.
func SetFieldText(r Record, name, text string) error {
	f, ok := Lookup(r, name)
	if !ok {
		return fmt.Errorf("unknown %s field %q", r.Direction(), name)
	}
	v, err := f.Prop.ParseText(text)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := f.Set(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Validate checks every field of the record and aggregates the failures.
func Validate(r Record) error {
	verr := &ValidationError{}
	for _, f := range r.Fields() {
		v := f.Get()
		if v == nil {
			continue
		}
		if err := f.Prop.Validate(v); err != nil {
			verr.Add(f.Name, err.Error())
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Assignments validates the record and returns it as ordered property
// assignments. Unset host-derived fields become deferred assignments
// carrying their resolution source. The result depends only on the record's
// field values.
func Assignments(r Record) ([]fbxprop.Assignment, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	fields := r.Fields()
	out := make([]fbxprop.Assignment, 0, len(fields))
	for _, f := range fields {
		v := f.Get()
		if v == nil {
			out = append(out, fbxprop.Assignment{Prop: f.Prop, Resolve: f.Prop.DefaultFrom})
			continue
		}
		out = append(out, fbxprop.Assignment{Prop: f.Prop, Value: v})
	}
	return out, nil
}

// PropertiesOf lists the property descriptors of a record in field order.
func PropertiesOf(r Record) []*fbxprop.Property {
	fields := r.Fields()
	props := make([]*fbxprop.Property, len(fields))
	for i, f := range fields {
		props[i] = f.Prop
	}
	return props
}
