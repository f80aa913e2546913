package generate

// Combinations returns every r-element subset of ids, in the same
// lexicographic-by-index order Python's itertools.combinations produces
// (SharedEditor.py's generate_combinations is a direct call-through to
// itertools.combinations). No suitable third-party combinatorics library
// appears anywhere in the example corpus, so this one piece of C5 is
// implemented directly against the standard library — see DESIGN.md.
func Combinations(ids []int, r int) [][]int {
	n := len(ids)
	if r <= 0 || r > n {
		return nil
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	emit := func() {
		combo := make([]int, r)
		for i, j := range idx {
			combo[i] = ids[j]
		}
		out = append(out, combo)
	}
	emit()

	for {
		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
		emit()
	}
}
