package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	set := NewSet(1, "a", [2]int{1, 2})
	assert.Len(t, set, 3)
	assert.Contains(t, set, 1)
	assert.Contains(t, set, "a")
	assert.Contains(t, set, [2]int{1, 2})

	// Duplicates collapse.
	assert.Len(t, NewSet(1, 1, 1), 1)
}

func TestSubjectClassification(t *testing.T) {
	t.Run("Sets", func(t *testing.T) {
		members, ok := setMembers(NewSet(3, 1, 2))
		assert.True(t, ok)
		assert.Equal(t, []any{1, 2, 3}, members)

		// Members whose %#v forms coincide are still ordered apart by
		// their dynamic types.
		members, ok = setMembers(NewSet(1, float64(1)))
		assert.True(t, ok)
		assert.Equal(t, []any{float64(1), 1}, members)

		// Any map with struct{} elements is a set, whatever its key type.
		_, ok = setMembers(map[string]struct{}{"a": {}})
		assert.True(t, ok)

		_, ok = setMembers(map[string]bool{"a": true})
		assert.False(t, ok)
		_, ok = setMembers([]any{1})
		assert.False(t, ok)
		_, ok = setMembers(nil)
		assert.False(t, ok)
	})

	t.Run("Mappings", func(t *testing.T) {
		pairs, ok := mapPairs(map[string]int{"b": 2, "a": 1})
		assert.True(t, ok)
		assert.Equal(t, []pair{{key: "a", val: 1}, {key: "b", val: 2}}, pairs)

		_, ok = mapPairs(NewSet(1))
		assert.False(t, ok)
		_, ok = mapPairs("not a map")
		assert.False(t, ok)
	})

	t.Run("Sequences", func(t *testing.T) {
		elems, family, ok := seqElems([]int{1, 2})
		assert.True(t, ok)
		assert.Equal(t, FamilySlice, family)
		assert.Equal(t, []any{1, 2}, elems)

		elems, family, ok = seqElems([2]string{"a", "b"})
		assert.True(t, ok)
		assert.Equal(t, FamilyArray, family)
		assert.Equal(t, []any{"a", "b"}, elems)

		_, _, ok = seqElems("strings are scalars")
		assert.False(t, ok)
		_, _, ok = seqElems(42)
		assert.False(t, ok)
	})
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "slice", FamilySlice.String())
	assert.Equal(t, "array", FamilyArray.String())
	assert.Equal(t, "unknown", Family(99).String())
}

func TestSentinels(t *testing.T) {
	// Sentinels compare by value, not by identity.
	assert.Equal(t, Any, wildcard{})
	assert.Equal(t, Unmatched, noValue{})
	assert.NotEqual(t, any(Any), any(Unmatched))
}

func TestVariableLifecycle(t *testing.T) {
	v := NewVariable()
	w := NewVariable()

	// 1. Fresh variables are unbound and have distinct ids.
	assert.Equal(t, Unmatched, v.Value())
	assert.False(t, v.Matched())
	assert.NotEqual(t, v.id, w.id)

	// 2. Is returns the same variable for inline use.
	assert.Same(t, v, v.Is(Any))

	// 3. Reset clears the value, not the constraint.
	v.Is(Slice(1)).value = []any{1}
	assert.True(t, v.Matched())
	v.Reset()
	assert.Equal(t, Unmatched, v.Value())
	assert.Equal(t, Slice(1), v.constraint)
}
