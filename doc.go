// Package singine provides the Singine graph-query engine: shortest paths
// between identified entities in a weighted, undirected similarity graph
// persisted in SQLite, plus content-addressable, URN-based identifier
// minting for graph entities and computed results.
//
// # Quick Start
//
//	ctx := context.Background()
//	eng, _ := singine.Open("singine.db")
//	defer eng.Close()
//
//	res, found, _ := eng.ShortestPath(ctx, "A", "C", singine.WithEdgeType("similarity"))
//	if found {
//	    fmt.Println(res.Path, res.TotalWeight)
//	}
//
// # Pipeline
//
// A query loads the edge snapshot (optionally filtered by edge type), sorts
// it by weight with an in-place quicksort, builds a bidirectional adjacency
// index, runs a cost-ordered priority-frontier search (Dijkstra) from source
// to destination, and persists the result row under a freshly minted
// identifier in the "path" namespace.
//
// # Identifiers
//
//	rec, _ := eng.GenerateID(ctx, "entity", "customer profile")
//	// rec.LocalID  entity-3f2a91bc-customer_profile
//	// rec.URN      urn:singine:entity:entity-3f2a91bc-customer_profile
//	// rec.Inode    42
//
// Inodes are namespace-scoped, strictly increasing, and never duplicated
// across concurrent callers; the increment is a single atomic statement in
// the store.
//
// # No-Path and Errors
//
// An exhausted search is an explicit absence (found == false), never an
// error. Storage faults surface as *StorageError and abort the operation
// with nothing partially persisted.
package singine
