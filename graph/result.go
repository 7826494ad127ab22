package graph

// PathResult is the outcome of a successful shortest-path query. It is
// immutable once produced and persisted exactly once; after the write the
// stored row is the source of truth.
type PathResult struct {
	Src         NodeID   `json:"src"`
	Dst         NodeID   `json:"dst"`
	Path        []NodeID `json:"path"`
	TotalWeight float64  `json:"total_weight"`
	Algorithm   string   `json:"algorithm"`
}
