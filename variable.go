package pattern

import "sync/atomic"

var lastVariableID atomic.Int64

// Variable is a capture site in a pattern. Each Variable gets a unique id at
// creation; bindings are keyed by that id, so two Variables are never
// interchangeable even when structurally identical.
type Variable struct {
	id         int
	constraint any
	value      any
}

// NewVariable creates an unconstrained, unbound Variable.
func NewVariable() *Variable {
	return &Variable{
		id:         int(lastVariableID.Add(1)),
		constraint: Any,
		value:      Unmatched,
	}
}

// Is attaches a subpattern that a captured subject must satisfy and returns
// the same Variable, so the call can sit inline in a pattern expression.
// The constraint is a pattern-construction property: Reset does not clear it,
// and a later Is call replaces it.
func (v *Variable) Is(subpattern any) *Variable {
	v.constraint = subpattern
	return v
}

// Value returns the captured value, or Unmatched.
func (v *Variable) Value() any {
	return v.value
}

// Matched reports whether the Variable holds a captured value.
func (v *Variable) Matched() bool {
	_, unbound := v.value.(noValue)
	return !unbound
}

// Reset clears the captured value back to Unmatched.
func (v *Variable) Reset() {
	v.value = Unmatched
}
