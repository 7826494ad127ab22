package graph

// Neighbor is one entry in a node's adjacency list.
type Neighbor struct {
	Node   NodeID
	Weight float64
}

// Adjacency maps every node to its neighbor entries. For every edge (a,b,w)
// the index contains b in adj[a] and a in adj[b]: the graph is treated as
// undirected regardless of the edge's EdgeType tag.
type Adjacency map[NodeID][]Neighbor

// BuildAdjacency converts an edge list into a bidirectional adjacency index.
// O(E) time and space. The order within each neighbor list follows the order
// edges are supplied, which makes the result deterministic for a sorted
// input; the search below does not depend on it for correctness.
func BuildAdjacency(edges []Edge) Adjacency {
	adj := make(Adjacency)
	for _, e := range edges {
		adj[e.Src] = append(adj[e.Src], Neighbor{Node: e.Dst, Weight: e.Weight})
		adj[e.Dst] = append(adj[e.Dst], Neighbor{Node: e.Src, Weight: e.Weight})
	}
	return adj
}
