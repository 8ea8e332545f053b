// Package pattern implements structural pattern matching over arbitrary Go
// values. A pattern is a tree combining literals, type checks, the Any
// wildcard, capture Variables, and ordered/unordered container patterns; a
// Matcher decides whether a subject value satisfies a pattern and, on
// success, exposes the value captured by each Variable.
package pattern

// wildcard is the type of the Any sentinel. It is an empty value type so the
// dispatcher compares it by value, never by pointer identity.
type wildcard struct{}

// Any is the wildcard pattern: it matches any subject and binds nothing.
var Any = wildcard{}

// noValue is the type of the Unmatched sentinel.
type noValue struct{}

// Unmatched is the value held by a Variable that has not captured anything.
var Unmatched = noValue{}

// Family identifies the concrete ordered-container kind of a sequence.
// A sequence pattern matches only subjects of the same family: a Slice
// pattern does not match an array subject even with identical elements.
type Family int

const (
	FamilySlice Family = iota
	FamilyArray
)

func (f Family) String() string {
	switch f {
	case FamilySlice:
		return "slice"
	case FamilyArray:
		return "array"
	}
	return "unknown"
}

// Seq is an ordered container pattern. Element patterns are matched against
// subject elements positionally; the subject must share the pattern's family
// and have exactly the same length.
type Seq struct {
	Family Family
	Elems  []any
}

// Slice builds a sequence pattern that matches Go slice subjects.
func Slice(elems ...any) Seq {
	return Seq{Family: FamilySlice, Elems: elems}
}

// Array builds a sequence pattern that matches Go array subjects.
func Array(elems ...any) Seq {
	return Seq{Family: FamilyArray, Elems: elems}
}

// Set is an unordered container pattern: each element pattern must be
// assigned a distinct member of the subject set. The subject may have more
// members than the pattern has elements.
type Set []any

// SetOf builds a set pattern from element patterns.
func SetOf(elems ...any) Set {
	return Set(elems)
}

// MapEntry pairs a key pattern with a value pattern.
type MapEntry struct {
	Key any
	Val any
}

// Entry builds one key/value entry of a map pattern.
func Entry(key, val any) MapEntry {
	return MapEntry{Key: key, Val: val}
}

// Map is an unordered pattern over key/value pairs: each entry must be
// assigned a distinct subject pair whose key and value both match. The key
// pattern is matched structurally against the subject key, so a Variable key
// can bind to any key whose paired value also matches.
type Map []MapEntry

// MapOf builds a map pattern from entries.
func MapOf(entries ...MapEntry) Map {
	return Map(entries)
}

// NewSet builds a set-shaped subject from its members. Matching classifies
// any Go map with struct{} elements as a set, so maps built elsewhere with
// that element type work just as well.
func NewSet(members ...any) map[any]struct{} {
	set := make(map[any]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}
