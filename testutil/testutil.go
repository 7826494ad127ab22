package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/singine/graph"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RandomEdges generates n edges with random weights in [0,100) over a node
// population of size max(2, n/2), so denser lists contain parallel edges
// and shared endpoints.
func RandomEdges(rng *RNG, n int) []graph.Edge {
	nodes := n / 2
	if nodes < 2 {
		nodes = 2
	}
	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{
			GenID:    fmt.Sprintf("edge-%04d", i),
			Src:      fmt.Sprintf("n%d", rng.Intn(nodes)),
			Dst:      fmt.Sprintf("n%d", rng.Intn(nodes)),
			Weight:   rng.Float64() * 100,
			EdgeType: "similarity",
		})
	}
	return edges
}

// LineGraph builds a path graph n0-n1-...-n(k-1) with unit weights.
func LineGraph(k int) []graph.Edge {
	if k < 2 {
		return nil
	}
	edges := make([]graph.Edge, 0, k-1)
	for i := 0; i < k-1; i++ {
		edges = append(edges, graph.Edge{
			GenID:    fmt.Sprintf("line-%04d", i),
			Src:      fmt.Sprintf("n%d", i),
			Dst:      fmt.Sprintf("n%d", i+1),
			Weight:   1.0,
			EdgeType: "similarity",
		})
	}
	return edges
}
