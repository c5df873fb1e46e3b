package logic

// A Variable is a named boolean cell. Its name never changes; its value starts false
// and can be overwritten at will.
// Formulas only hold references to variables, they never own them.
type Variable struct {
	name  string
	value bool
}

// NewVariable returns a new variable, set to false.
// Any name is accepted, including the empty one. Two variables with the same name
// are still two distinct cells.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the name of v.
func (v *Variable) Name() string {
	return v.name
}

// Value returns the current value of v.
func (v *Variable) Value() bool {
	return v.value
}

// SetValue binds v to val.
func (v *Variable) SetValue(val bool) {
	v.value = val
}

func (v *Variable) String() string {
	return v.name
}
