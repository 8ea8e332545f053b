package pattern

import "iter"

// Matcher owns a fixed tuple of capture Variables and orchestrates each
// match attempt: reset, uniqueness check, dispatch, then binding on success.
// A Matcher is mutable shared state and is not safe for concurrent use;
// serialize access or give each goroutine its own Matcher.
type Matcher struct {
	vars    []*Variable
	matched bool
}

// NewMatcher creates a Matcher with arity capture Variables and returns both
// the Matcher and its Variables, so a call site can destructure them:
//
//	m, vars := pattern.NewMatcher(2)
//	ok, err := m.Match(pattern.Slice(1, vars[0], vars[1]), []any{1, 2, 3})
func NewMatcher(arity int) (*Matcher, []*Variable) {
	vars := make([]*Variable, arity)
	for i := range vars {
		vars[i] = NewVariable()
	}
	m := &Matcher{vars: vars}
	return m, m.Variables()
}

// Match reports whether subject satisfies pat. Every Variable owned by the
// Matcher is reset to Unmatched first, so a failed attempt leaves no partial
// bindings behind; on success each Variable used in pat holds the value it
// captured. A pattern that uses the same Variable instance at more than one
// site is a usage error: Match returns a
// *patternerr.RepeatedVariableError and attempts no matching.
func (m *Matcher) Match(pat, subject any) (bool, error) {
	m.matched = false
	for _, v := range m.vars {
		v.Reset()
	}

	varsInPattern, err := checkUniqueVariables(pat)
	if err != nil {
		return false, err
	}

	binds, ok := match(pat, subject)
	m.matched = ok
	if !ok {
		return false, nil
	}
	for id, val := range binds {
		varsInPattern[id].value = val
	}
	return true, nil
}

// Matched reports the result of the most recent Match call.
func (m *Matcher) Matched() bool {
	return m.matched
}

// Variables returns the Matcher's Variables in declaration order. The slice
// is a copy; the Variables themselves are shared.
func (m *Matcher) Variables() []*Variable {
	vars := make([]*Variable, len(m.vars))
	copy(vars, m.vars)
	return vars
}

// Values yields the current value of each Variable in declaration order,
// with Unmatched for variables that captured nothing.
func (m *Matcher) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range m.vars {
			if !yield(v.value) {
				return
			}
		}
	}
}
