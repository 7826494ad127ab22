// Package testutil provides testing utilities for Singine.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and
// generators for synthetic edge lists.
//
// # Random Edge Generation
//
//	rng := testutil.NewRNG(seed)
//	edges := testutil.RandomEdges(rng, 500)
//
// # Known Topologies
//
//	edges := testutil.LineGraph(10) // n0-n1-...-n9, unit weights
package testutil
