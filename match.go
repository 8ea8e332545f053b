package pattern

import "reflect"

// bindings accumulates values captured during one match attempt, keyed by
// Variable id. They reach Variable cells only if the whole pattern matches.
type bindings map[int]any

func (b bindings) merge(other bindings) {
	for id, val := range other {
		b[id] = val
	}
}

// match is the recursive dispatcher. Checks are ordered by pattern kind:
// containers first, then type checks, variables, the wildcard, and finally
// literal equality. Shape, length, and family mismatches are normal
// non-matches, not errors.
func match(pat, subject any) (bindings, bool) {
	switch p := pat.(type) {
	case Set:
		members, ok := setMembers(subject)
		if !ok || len(members) < len(p) {
			return nil, false
		}
		return matchUnordered(len(p), len(members), func(i, j int) (bindings, bool) {
			return match(p[i], members[j])
		})
	case Map:
		pairs, ok := mapPairs(subject)
		if !ok || len(pairs) < len(p) {
			return nil, false
		}
		return matchUnordered(len(p), len(pairs), func(i, j int) (bindings, bool) {
			return matchPair(p[i], pairs[j])
		})
	case Seq:
		elems, family, ok := seqElems(subject)
		if !ok || family != p.Family || len(elems) != len(p.Elems) {
			return nil, false
		}
		return matchOrdered(p.Elems, elems)
	case reflect.Type:
		if instanceOf(subject, p) {
			return bindings{}, true
		}
		return nil, false
	case *Variable:
		binds, ok := match(p.constraint, subject)
		if !ok {
			return nil, false
		}
		binds[p.id] = subject
		return binds, true
	case wildcard:
		return bindings{}, true
	default:
		if reflect.DeepEqual(pat, subject) {
			return bindings{}, true
		}
		return nil, false
	}
}

// matchOrdered matches equal-length sequences element-wise, aborting on the
// first mismatching element.
func matchOrdered(elems []any, subjects []any) (bindings, bool) {
	combined := bindings{}
	for i, elem := range elems {
		binds, ok := match(elem, subjects[i])
		if !ok {
			return nil, false
		}
		combined.merge(binds)
	}
	return combined, true
}

// matchPair matches one map-pattern entry against one subject pair: the key
// subpattern and the value subpattern must both hold.
func matchPair(entry MapEntry, p pair) (bindings, bool) {
	keyBinds, ok := match(entry.Key, p.key)
	if !ok {
		return nil, false
	}
	valBinds, ok := match(entry.Val, p.val)
	if !ok {
		return nil, false
	}
	keyBinds.merge(valBinds)
	return keyBinds, true
}

// instanceOf reports whether subject's dynamic type is typ or is assignable
// to it, which covers interface satisfaction.
func instanceOf(subject any, typ reflect.Type) bool {
	t := reflect.TypeOf(subject)
	if t == nil {
		return false
	}
	return t.AssignableTo(typ)
}
