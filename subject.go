package pattern

import (
	"fmt"
	"reflect"
	"sort"
)

// pair is one key/value pair drawn from a mapping subject.
type pair struct {
	key any
	val any
}

var emptyStruct = reflect.TypeOf(struct{}{})

// setMembers classifies subject as a set and returns its members in
// canonical order. Any Go map with struct{} elements counts as a set.
func setMembers(subject any) ([]any, bool) {
	v := reflect.ValueOf(subject)
	if v.Kind() != reflect.Map || v.Type().Elem() != emptyStruct {
		return nil, false
	}
	members := make([]any, 0, v.Len())
	for _, key := range v.MapKeys() {
		members = append(members, key.Interface())
	}
	sort.SliceStable(members, func(i, j int) bool {
		return render(members[i]) < render(members[j])
	})
	return members, true
}

// mapPairs classifies subject as a mapping and returns its pairs in
// canonical key order. Set-shaped maps are not mappings.
func mapPairs(subject any) ([]pair, bool) {
	v := reflect.ValueOf(subject)
	if v.Kind() != reflect.Map || v.Type().Elem() == emptyStruct {
		return nil, false
	}
	pairs := make([]pair, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		pairs = append(pairs, pair{key: it.Key().Interface(), val: it.Value().Interface()})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return render(pairs[i].key) < render(pairs[j].key)
	})
	return pairs, true
}

// seqElems classifies subject as an ordered sequence and returns its
// elements together with its family.
func seqElems(subject any) ([]any, Family, bool) {
	v := reflect.ValueOf(subject)
	var family Family
	switch v.Kind() {
	case reflect.Slice:
		family = FamilySlice
	case reflect.Array:
		family = FamilyArray
	default:
		return nil, 0, false
	}
	elems := make([]any, v.Len())
	for i := range elems {
		elems[i] = v.Index(i).Interface()
	}
	return elems, family, true
}

// render produces a stable textual form of a value. Go randomizes map
// iteration order between runs, so elements drawn from map subjects are
// sorted by this form to keep match results reproducible. The dynamic type
// leads the form because %#v alone renders distinct scalars identically
// (int(1), int8(1), and float64(1) all print as 1), and a tie would fall
// back to the randomized map order.
func render(v any) string {
	return fmt.Sprintf("%T\x00%#v", v, v)
}
