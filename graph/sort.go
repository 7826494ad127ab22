package graph

// SortByWeight orders edges in place by ascending weight using an in-place
// partition-exchange sort (quicksort, last element as pivot). Ties may end up
// in either relative order; no stability is guaranteed.
//
// Worst case is O(n²) on adversarial input (e.g. sorted descending), average
// O(n log n). This is an accepted trade-off: input graphs are expected to be
// small and sparse, and the in-place swaps avoid any allocation beyond the
// input slice itself.
func SortByWeight(edges []Edge) {
	if len(edges) < 2 {
		return
	}
	quicksort(edges, 0, len(edges)-1)
}

func quicksort(edges []Edge, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(edges, lo, hi)
	if p > 0 {
		quicksort(edges, lo, p-1)
	}
	quicksort(edges, p+1, hi)
}

// partition moves everything with weight <= the pivot (the last element of
// the range) before it and returns the pivot's final index.
func partition(edges []Edge, lo, hi int) int {
	pivot := edges[hi].Weight
	i := lo
	for j := lo; j < hi; j++ {
		if edges[j].Weight <= pivot {
			edges[i], edges[j] = edges[j], edges[i]
			i++
		}
	}
	edges[i], edges[hi] = edges[hi], edges[i]
	return i
}
