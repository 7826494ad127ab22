// Package frontier implements the cost-ordered priority frontier used by the
// shortest-path search: a binary min-heap keyed on tentative path cost.
package frontier

import "github.com/hupe1980/singine/graph"

// State is one not-yet-finalized search state. Each State carries the full
// path prefix from the source, so no predecessor backtracking pass is needed
// when the destination is reached. One State is created per frontier
// expansion and discarded after being consumed.
type State struct {
	Cost float64
	Node graph.NodeID
	Path []graph.NodeID
}

// Frontier is a min-heap of States ordered by Cost. Value-based storage for
// better cache locality and fewer allocations. Ties are broken arbitrarily by
// the heap ordering; that is not semantically significant to the search.
type Frontier struct {
	items []State
}

// New initializes a frontier with the given capacity hint.
func New(capacity int) *Frontier {
	return &Frontier{
		items: make([]State, 0, capacity),
	}
}

// Len returns the number of states in the frontier.
func (f *Frontier) Len() int { return len(f.items) }

// Push inserts a state while maintaining the heap invariant.
func (f *Frontier) Push(s State) {
	f.items = append(f.items, s)
	f.siftUp(len(f.items) - 1)
}

// Pop removes and returns the minimum-cost state.
func (f *Frontier) Pop() (State, bool) {
	n := len(f.items)
	if n == 0 {
		return State{}, false
	}
	root := f.items[0]
	last := f.items[n-1]
	f.items[n-1] = State{} // Zero out for GC
	f.items = f.items[:n-1]
	if n-1 > 0 {
		f.items[0] = last
		f.siftDown(0)
	}
	return root, true
}

// Top returns the minimum-cost state without removing it.
func (f *Frontier) Top() (State, bool) {
	if len(f.items) == 0 {
		return State{}, false
	}
	return f.items[0], true
}

// Reset clears the frontier for reuse.
func (f *Frontier) Reset() {
	f.items = f.items[:0]
}

func (f *Frontier) less(i, j int) bool {
	return f.items[i].Cost < f.items[j].Cost
}

func (f *Frontier) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !f.less(i, p) {
			return
		}
		f.items[i], f.items[p] = f.items[p], f.items[i]
		i = p
	}
}

func (f *Frontier) siftDown(i int) {
	n := len(f.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && f.less(r, l) {
			best = r
		}
		if !f.less(best, i) {
			return
		}
		f.items[i], f.items[best] = f.items[best], f.items[i]
		i = best
	}
}
