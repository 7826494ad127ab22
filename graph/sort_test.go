package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEdges() []Edge {
	return []Edge{
		{GenID: "3", Src: "a", Dst: "b", Weight: 3.0, EdgeType: "similarity"},
		{GenID: "1", Src: "b", Dst: "c", Weight: 1.0, EdgeType: "similarity"},
		{GenID: "2", Src: "a", Dst: "c", Weight: 2.0, EdgeType: "similarity"},
	}
}

func TestSortByWeight_Ascending(t *testing.T) {
	edges := testEdges()
	SortByWeight(edges)

	require.Len(t, edges, 3)
	assert.Equal(t, 1.0, edges[0].Weight)
	assert.Equal(t, 2.0, edges[1].Weight)
	assert.Equal(t, 3.0, edges[2].Weight)
}

func TestSortByWeight_Permutation(t *testing.T) {
	edges := []Edge{
		{GenID: "e1", Weight: 5.5},
		{GenID: "e2", Weight: 0.1},
		{GenID: "e3", Weight: 5.5},
		{GenID: "e4", Weight: 2.0},
		{GenID: "e5", Weight: 0.1},
	}

	before := map[string]int{}
	for _, e := range edges {
		before[e.GenID]++
	}

	SortByWeight(edges)

	after := map[string]int{}
	for _, e := range edges {
		after[e.GenID]++
	}
	assert.Equal(t, before, after, "sorted output must be a permutation of the input")

	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, edges[i-1].Weight, edges[i].Weight)
	}
}

func TestSortByWeight_Idempotent(t *testing.T) {
	edges := testEdges()
	SortByWeight(edges)

	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight
	}

	SortByWeight(edges)
	for i, e := range edges {
		assert.Equal(t, weights[i], e.Weight)
	}
}

func TestSortByWeight_DegenerateInputs(t *testing.T) {
	SortByWeight(nil)
	SortByWeight([]Edge{})

	one := []Edge{{GenID: "solo", Weight: 7.0}}
	SortByWeight(one)
	assert.Equal(t, "solo", one[0].GenID)
}

func TestSortByWeight_DescendingInput(t *testing.T) {
	// Worst case for the last-element pivot; correctness must still hold.
	edges := make([]Edge, 0, 64)
	for i := 0; i < 64; i++ {
		edges = append(edges, Edge{Weight: float64(64 - i)})
	}

	SortByWeight(edges)
	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, edges[i-1].Weight, edges[i].Weight)
	}
}
