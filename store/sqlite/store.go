package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/hupe1980/singine/codec"
	"github.com/hupe1980/singine/graph"
	"github.com/hupe1980/singine/identity"
)

// Compile time check to ensure Store satisfies the counter contract.
var _ identity.CounterStore = (*Store)(nil)

// schema bootstraps the tables this core owns. similarity_edges is read-only
// from the engine's perspective but is created here too so a fresh database
// file is immediately usable for seeding and tests.
const schema = `
CREATE TABLE IF NOT EXISTS inode_counter (
  namespace  TEXT NOT NULL PRIMARY KEY,
  next_inode INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS similarity_edges (
  gen_id    TEXT,
  src_id    TEXT,
  dst_id    TEXT,
  weight    REAL,
  edge_type TEXT
);
CREATE TABLE IF NOT EXISTS path_results (
  gen_id       TEXT,
  src_id       TEXT,
  dst_id       TEXT,
  path_json    TEXT,
  total_weight REAL,
  algorithm    TEXT,
  run_id       TEXT
);
`

// nextInodeSQL is the system's one concurrency-correctness-bearing statement:
// create-if-absent, increment, and read back the pre-increment value in a
// single atomic step.
const nextInodeSQL = `
INSERT INTO inode_counter (namespace, next_inode) VALUES (?, 2)
ON CONFLICT(namespace) DO UPDATE SET next_inode = next_inode + 1
RETURNING next_inode - 1`

// Store wraps a SQLite database file.
type Store struct {
	db    *sql.DB
	codec codec.Codec
}

// Option configures a Store.
type Option func(*Store)

// WithCodec configures the codec used to serialize the path column.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c == nil {
			c = codec.Default
		}
		s.codec = c
	}
}

// Open opens (creating if necessary) the SQLite database at path and
// bootstraps this core's tables.
func Open(path string, optFns ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite allows a single writer. One pooled connection serializes
	// statements in-process instead of surfacing SQLITE_BUSY to callers;
	// cross-process atomicity is carried by the upsert statement itself.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	s := &Store{db: db, codec: codec.Default}
	for _, fn := range optFns {
		fn(s)
	}
	return s, nil
}

// DB exposes the underlying handle for collaborators that run their own
// statements against the same file (e.g. the migration runner).
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// NextInode implements identity.CounterStore. It returns the pre-increment
// counter value for the namespace; the first call for a fresh namespace
// returns 1. Issued values are strictly increasing per namespace and never
// duplicated across concurrent callers.
func (s *Store) NextInode(ctx context.Context, namespace string) (uint64, error) {
	var inode int64
	if err := s.db.QueryRowContext(ctx, nextInodeSQL, namespace).Scan(&inode); err != nil {
		return 0, fmt.Errorf("increment inode counter for %q: %w", namespace, err)
	}
	return uint64(inode), nil
}

// LoadEdges reads the current edge snapshot, optionally constrained to one
// edge type (exact match, parameter-bound). The storage-layer ORDER BY is a
// convenience only; graph.SortByWeight remains the authoritative ordering
// step.
func (s *Store) LoadEdges(ctx context.Context, edgeType string) ([]graph.Edge, error) {
	query := `SELECT gen_id, src_id, dst_id, weight, edge_type FROM similarity_edges`
	var args []any
	if edgeType != "" {
		query += ` WHERE edge_type = ?`
		args = append(args, edgeType)
	}
	query += ` ORDER BY weight`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	defer rows.Close()

	var edges []graph.Edge
	for rows.Next() {
		var e graph.Edge
		if err := rows.Scan(&e.GenID, &e.Src, &e.Dst, &e.Weight, &e.EdgeType); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	return edges, nil
}

// InsertEdge writes one edge row. Used by seeding tooling and tests; the
// query engine itself never mutates similarity_edges.
func (s *Store) InsertEdge(ctx context.Context, e graph.Edge) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO similarity_edges (gen_id, src_id, dst_id, weight, edge_type) VALUES (?,?,?,?,?)`,
		e.GenID, e.Src, e.Dst, e.Weight, e.EdgeType,
	)
	if err != nil {
		return fmt.Errorf("insert edge %s: %w", e.GenID, err)
	}
	return nil
}

// InsertPathResult appends one result row under the given minted id. runID is
// the optional pipeline-run correlation id; empty means NULL.
func (s *Store) InsertPathResult(ctx context.Context, genID string, res *graph.PathResult, runID string) error {
	pathJSON, err := s.codec.Marshal(res.Path)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}

	var run sql.NullString
	if runID != "" {
		run = sql.NullString{String: runID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO path_results (gen_id, src_id, dst_id, path_json, total_weight, algorithm, run_id)
		 VALUES (?,?,?,?,?,?,?)`,
		genID, res.Src, res.Dst, string(pathJSON), res.TotalWeight, res.Algorithm, run,
	)
	if err != nil {
		return fmt.Errorf("insert path result %s: %w", genID, err)
	}
	return nil
}

// StoredPathResult is one persisted row of path_results.
type StoredPathResult struct {
	GenID  string
	Result graph.PathResult
	RunID  string
}

// PathResultsByRun returns the persisted results correlated with the given
// pipeline run id, in insertion order.
func (s *Store) PathResultsByRun(ctx context.Context, runID string) ([]StoredPathResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT gen_id, src_id, dst_id, path_json, total_weight, algorithm, run_id
		 FROM path_results WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query path results: %w", err)
	}
	defer rows.Close()

	var results []StoredPathResult
	for rows.Next() {
		var (
			r        StoredPathResult
			pathJSON string
			run      sql.NullString
		)
		if err := rows.Scan(&r.GenID, &r.Result.Src, &r.Result.Dst, &pathJSON,
			&r.Result.TotalWeight, &r.Result.Algorithm, &run); err != nil {
			return nil, fmt.Errorf("scan path result: %w", err)
		}
		if err := s.codec.Unmarshal([]byte(pathJSON), &r.Result.Path); err != nil {
			return nil, fmt.Errorf("decode path for %s: %w", r.GenID, err)
		}
		r.RunID = run.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query path results: %w", err)
	}
	return results, nil
}

// SchemaVersion returns the latest applied migration version, or "none" when
// no migration bookkeeping exists yet (fresh database, or the migration
// runner has never touched it).
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx,
		`SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`,
	).Scan(&version)
	switch {
	case err == nil:
		return version, nil
	case errors.Is(err, sql.ErrNoRows), isMissingTable(err):
		return "none", nil
	default:
		return "", fmt.Errorf("read schema version: %w", err)
	}
}

// TableCount returns the number of tables in the database file.
func (s *Store) TableCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tables: %w", err)
	}
	return count, nil
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
