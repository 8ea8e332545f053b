package pattern

import "sort"

// cell is one entry of the compatibility table: whether a pattern element
// matches a subject element, and the bindings that match produced.
type cell struct {
	ok    bool
	binds bindings
}

// matchUnordered decides whether all m pattern elements can be assigned
// distinct, individually compatible subject elements out of n. compat
// reports whether pattern element p matches subject element s.
//
// It precomputes the full m-by-n compatibility table, reorders pattern rows
// most-constrained-first, then runs an explicit backtracking search over the
// table. The first complete assignment found under that deterministic order
// wins; its bindings are merged and returned.
func matchUnordered(m, n int, compat func(p, s int) (bindings, bool)) (bindings, bool) {
	rows := make([][]cell, m)
	counts := make([]int, m)
	for p := 0; p < m; p++ {
		rows[p] = make([]cell, n)
		for s := 0; s < n; s++ {
			binds, ok := compat(p, s)
			rows[p][s] = cell{ok: ok, binds: binds}
			if ok {
				counts[p]++
			}
		}
	}

	// Most-constrained-first: rows with the fewest compatible subjects are
	// tried first, so rare pattern elements fail before cheap ones. The
	// stable sort keeps the search order deterministic.
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] < counts[order[j]]
	})
	ordered := make([][]cell, m)
	for i, p := range order {
		ordered[i] = rows[p]
	}

	// Backtracking over pattern rows: cursor[p] scans subject indices for
	// row p, claimed marks subjects taken by earlier rows.
	cursor := make([]int, m)
	chosen := make([]int, m)
	claimed := make([]bool, n)
	p := 0
	for p < m {
		if cursor[p] == n {
			// Row p is out of candidates; back up one row.
			if p == 0 {
				return nil, false
			}
			cursor[p] = 0
			p--
			claimed[chosen[p]] = false
			cursor[p]++
			continue
		}
		s := cursor[p]
		if claimed[s] || !ordered[p][s].ok {
			cursor[p]++
			continue
		}
		claimed[s] = true
		chosen[p] = s
		p++
	}

	combined := bindings{}
	for p := 0; p < m; p++ {
		combined.merge(ordered[p][chosen[p]].binds)
	}
	return combined, true
}
