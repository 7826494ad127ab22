package graph

// NodeID identifies a node in the similarity graph. Node ids are the gen_ids
// of the entities the edges connect.
type NodeID = string

// Edge is a weighted, undirected connection between two nodes.
//
// Edges are immutable once loaded. Identity is the edge's own GenID; multiple
// edges may connect the same node pair and no deduplication is performed.
// EdgeType is load-time filter metadata only; it does not make the edge
// directional at traversal time.
type Edge struct {
	GenID    string  `json:"gen_id"`
	Src      NodeID  `json:"src_id"`
	Dst      NodeID  `json:"dst_id"`
	Weight   float64 `json:"weight"`
	EdgeType string  `json:"edge_type"`
}
