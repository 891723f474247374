package liverpool

import "gonum.org/v1/gonum/stat/combin"

// chooseIndices returns every k-subset of {0, ..., n-1}, as index slices,
// in lexicographic order. Delegates to gonum's combinatorics package
// (the same package the teacher's own internal/cgen.go tool uses to
// enumerate combinations for precomputed tables), guarding the k=0 and
// out-of-range cases gonum's Combinations does not accept.
func chooseIndices(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	return combin.Combinations(n, k)
}

// equalSlice reports whether a and b hold the same elements in the same
// order.
func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// UniqueCombinations returns every k-combination of items, skipping
// combinations whose values duplicate the immediately preceding one. This
// mirrors combinatorics.py's unique_combinations: when items contains
// adjacent duplicate values (e.g. a joker-padded, sorted suit list),
// itertools.combinations over it yields value-duplicate tuples
// consecutively, so checking only against the previous result is enough
// to de-duplicate. Callers must pass items in the order they want this
// adjacency property to hold (typically sorted).
func UniqueCombinations[T comparable](items []T, k int) [][]T {
	idxCombos := chooseIndices(len(items), k)
	var out [][]T
	var last []T
	for _, idx := range idxCombos {
		combo := make([]T, len(idx))
		for i, ix := range idx {
			combo[i] = items[ix]
		}
		if len(out) > 0 && equalSlice(combo, last) {
			continue
		}
		out = append(out, combo)
		last = combo
	}
	return out
}

// CombinationsWithReplacement returns every k-combination of items drawn
// with replacement, in the same order Python's
// itertools.combinations_with_replacement would produce (a direct port of
// combinatorics.py's hand-rolled combinations_with_replacement, written
// before that function moved into Python's standard library). Gonum's
// combinatorics package has no with-replacement generator, so this stays
// a generic algorithm over index positions rather than a library call.
func CombinationsWithReplacement[T any](items []T, k int) [][]T {
	n := len(items)
	if n == 0 && k > 0 {
		return nil
	}
	indices := make([]int, k)
	var out [][]T
	emit := func() {
		combo := make([]T, k)
		for i, ix := range indices {
			combo[i] = items[ix]
		}
		out = append(out, combo)
	}
	emit()
	for {
		i := k - 1
		for ; i >= 0; i-- {
			if indices[i] != n-1 {
				break
			}
		}
		if i < 0 {
			return out
		}
		for j := i; j < k; j++ {
			indices[j] = indices[i] + 1
		}
		emit()
	}
}
