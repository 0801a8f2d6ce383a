package fbxprop

// Assignment pairs a property with the value it should take on the host.
// A nil Value with a non-zero Resolve means the value comes from a host
// query at apply time.
type Assignment struct {
	Prop    *Property
	Value   any
	Resolve Source
}

// Deferred reports whether the value must be resolved from the host before
// the assignment can be serialized.
func (a Assignment) Deferred() bool {
	return a.Value == nil && a.Resolve != SourceNone
}

// Command returns the MEL statement for the assignment. Deferred
// assignments must be resolved first.
func (a Assignment) Command() (string, error) {
	return a.Prop.SetCommand(a.Value)
}
