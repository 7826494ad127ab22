// Package search runs the point-to-point shortest-path query over an
// adjacency index built by the graph package.
package search

import (
	"github.com/hupe1980/singine/graph"
	"github.com/hupe1980/singine/internal/frontier"
)

// Algorithm tags the result rows written by the persister. The sort step is
// part of the pipeline identity, hence the combined tag.
const Algorithm = "dijkstra+quicksort"

// Epsilon is the tolerance used when comparing a popped frontier cost to the
// best known cost for its node. It absorbs accumulated floating-point drift
// so a state is not discarded as stale when it is merely rounded.
const Epsilon = 1e-9

// Dijkstra finds the cheapest path from src to dst over adj and returns it
// together with true, or (nil, false) when no path exists. Absence is not an
// error.
//
// This is the classic cost-ordered priority-frontier search, generalized to
// carry the full path prefix in each frontier entry instead of reconstructing
// the path afterward via predecessor pointers. Each entry duplicates its
// path-so-far, trading O(V) extra memory per entry for skipping a separate
// backtracking pass.
//
// Preconditions (not validated here): edge weights are non-negative and
// finite, and src/dst identify nodes of the supplied graph snapshot. Negative
// weights are out of contract. adj is exclusively owned by this call and must
// not be mutated concurrently.
func Dijkstra(adj graph.Adjacency, src, dst graph.NodeID) (*graph.PathResult, bool) {
	best := map[graph.NodeID]float64{src: 0}

	f := frontier.New(len(adj))
	f.Push(frontier.State{
		Cost: 0,
		Node: src,
		Path: []graph.NodeID{src},
	})

	for {
		s, ok := f.Pop()
		if !ok {
			break
		}

		// The only success exit: the cheapest outstanding state reached dst.
		if s.Node == dst {
			return &graph.PathResult{
				Src:         src,
				Dst:         dst,
				Path:        s.Path,
				TotalWeight: s.Cost,
				Algorithm:   Algorithm,
			}, true
		}

		// Stale state superseded by a cheaper path found after it was pushed.
		if b, ok := best[s.Node]; ok && s.Cost > b+Epsilon {
			continue
		}

		for _, nb := range adj[s.Node] {
			candidate := s.Cost + nb.Weight
			if cur, ok := best[nb.Node]; ok && candidate >= cur {
				continue
			}
			best[nb.Node] = candidate

			path := make([]graph.NodeID, len(s.Path)+1)
			copy(path, s.Path)
			path[len(s.Path)] = nb.Node

			f.Push(frontier.State{
				Cost: candidate,
				Node: nb.Node,
				Path: path,
			})
		}
	}

	return nil, false
}
