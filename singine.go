package singine

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/singine/codec"
	"github.com/hupe1980/singine/graph"
	"github.com/hupe1980/singine/identity"
	"github.com/hupe1980/singine/reportstore"
	"github.com/hupe1980/singine/search"
	"github.com/hupe1980/singine/store/sqlite"
)

// Version is the engine tag reported by Status.
const Version = "1.0.0"

// pathNamespace is the identifier namespace used for persisted results.
const pathNamespace = "path"

// Engine is the graph-query engine: it loads the persisted edge snapshot,
// answers point-to-point shortest-path queries, and mints URN-addressable
// identifiers.
//
// The engine is designed for synchronous, single-operation-at-a-time use per
// caller. Concurrent queries are safe because every query builds and owns an
// independent edge list and adjacency index; the only shared mutable state is
// the durable inode counter, whose atomicity the store carries.
type Engine struct {
	store   *sqlite.Store
	issuer  *identity.Issuer
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
}

// Open opens (creating if necessary) the engine database at path.
func Open(path string, optFns ...Option) (*Engine, error) {
	opts := options{
		codec:   codec.Default,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	store, err := sqlite.Open(path, sqlite.WithCodec(opts.codec))
	if err != nil {
		return nil, storageErr("open", err)
	}

	counters := opts.counters
	if counters == nil {
		counters = store
	}

	return &Engine{
		store:   store,
		issuer:  identity.NewIssuer(counters),
		codec:   opts.codec,
		logger:  opts.logger,
		metrics: opts.metrics,
	}, nil
}

// ShortestPath answers a point-to-point shortest-path query over the current
// edge snapshot and persists the result under a freshly minted identifier.
//
// found is false when src and dst are in disconnected components. That is a
// legitimate outcome, not an error, and nothing is persisted in that case.
// Any storage fault aborts the operation with a *StorageError and no partial
// persistence. Negative edge weights are out of contract and are not
// validated here.
func (e *Engine) ShortestPath(ctx context.Context, src, dst graph.NodeID, optFns ...QueryOption) (*graph.PathResult, bool, error) {
	var q queryOptions
	for _, fn := range optFns {
		fn(&q)
	}
	logger := e.logger.WithRunID(q.runID)

	loadStart := time.Now()
	edges, err := e.store.LoadEdges(ctx, q.edgeType)
	e.metrics.RecordLoad(len(edges), time.Since(loadStart), err)
	if err != nil {
		return nil, false, storageErr("load edges", err)
	}
	logger.InfoContext(ctx, "loaded edges, running quicksort", "edge_count", len(edges))

	graph.SortByWeight(edges)
	adj := graph.BuildAdjacency(edges)

	searchStart := time.Now()
	res, found := search.Dijkstra(adj, src, dst)
	searchDuration := time.Since(searchStart)
	e.metrics.RecordSearch(searchDuration, found, nil)

	if !found {
		logger.LogSearch(ctx, src, dst, false, 0, 0, searchDuration)
		return nil, false, nil
	}
	logger.LogSearch(ctx, src, dst, true, len(res.Path), res.TotalWeight, searchDuration)

	genID, err := e.persist(ctx, res, q.runID)
	if err != nil {
		return nil, false, err
	}
	logger.InfoContext(ctx, "shortest path persisted", "path_id", genID)

	return res, true, nil
}

// persist mints an identifier in the "path" namespace and writes the result
// row. If the write fails after a successful mint the inode counter has
// still advanced; monotonicity is preserved and the gap is acceptable.
func (e *Engine) persist(ctx context.Context, res *graph.PathResult, runID string) (string, error) {
	mintStart := time.Now()
	rec, err := e.issuer.Mint(ctx, pathNamespace, "")
	e.metrics.RecordMint(time.Since(mintStart), err)
	if err != nil {
		return "", storageErr("mint path id", err)
	}

	persistStart := time.Now()
	err = e.store.InsertPathResult(ctx, rec.LocalID, res, runID)
	e.metrics.RecordPersist(time.Since(persistStart), err)
	if err != nil {
		return "", storageErr("persist path result", err)
	}
	return rec.LocalID, nil
}

// GenerateID mints a standalone identifier in the given namespace. hint, when
// non-empty, is sanitized and embedded in the local id.
func (e *Engine) GenerateID(ctx context.Context, namespace, hint string) (*identity.Record, error) {
	start := time.Now()
	rec, err := e.issuer.Mint(ctx, namespace, hint)
	e.metrics.RecordMint(time.Since(start), err)
	if err != nil {
		e.logger.LogMint(ctx, namespace, "", 0, err)
		return nil, storageErr("mint", err)
	}
	e.logger.LogMint(ctx, namespace, rec.LocalID, rec.Inode, nil)
	return rec, nil
}

// ResolveURN extracts the local id from a Singine URN. It returns false for
// any string that does not match the urn:singine:<namespace>:<localID>
// shape.
func ResolveURN(urn string) (string, bool) {
	return identity.ResolveURN(urn)
}

// Status describes the opened database.
type Status struct {
	Tables        int    `json:"tables"`
	SchemaVersion string `json:"schema_version"`
	Engine        string `json:"engine"`
	Version       string `json:"version"`
}

// Status reports table count and migration state for the opened database.
func (e *Engine) Status(ctx context.Context) (*Status, error) {
	tables, err := e.store.TableCount(ctx)
	if err != nil {
		return nil, storageErr("status", err)
	}
	version, err := e.store.SchemaVersion(ctx)
	if err != nil {
		return nil, storageErr("status", err)
	}
	return &Status{
		Tables:        tables,
		SchemaVersion: version,
		Engine:        "singine-persistence-go",
		Version:       Version,
	}, nil
}

// Store exposes the underlying SQLite store for collaborators that need
// direct access (seeding, migration runner, result inspection).
func (e *Engine) Store() *sqlite.Store { return e.store }

// WriteReport serializes a path result with the engine's codec and writes it
// to the given report store under name.
func (e *Engine) WriteReport(ctx context.Context, rs reportstore.ReportStore, name string, res *graph.PathResult) error {
	data, err := e.codec.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := rs.Put(ctx, name, data); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}
	return nil
}
