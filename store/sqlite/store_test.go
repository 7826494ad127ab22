package sqlite

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/singine/graph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "singine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNextInode_Sequential(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := uint64(1); want <= 5; want++ {
		got, err := s.NextInode(ctx, "entity")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Independent namespace starts over.
	got, err := s.NextInode(ctx, "path")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestNextInode_ConcurrentCallersNeverCollide(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const (
		workers = 8
		perWork = 25
	)

	results := make(chan uint64, workers*perWork)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWork; i++ {
				inode, err := s.NextInode(ctx, "entity")
				if err != nil {
					return err
				}
				results <- inode
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(results)

	issued := make([]uint64, 0, workers*perWork)
	for inode := range results {
		issued = append(issued, inode)
	}
	require.Len(t, issued, workers*perWork)

	sort.Slice(issued, func(i, j int) bool { return issued[i] < issued[j] })
	for i, inode := range issued {
		assert.Equal(t, uint64(i+1), inode, "inodes must be unique and dense")
	}
}

func TestLoadEdges_FilterIsExactAndBound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seed := []graph.Edge{
		{GenID: "e1", Src: "A", Dst: "B", Weight: 1.0, EdgeType: "sim"},
		{GenID: "e2", Src: "B", Dst: "C", Weight: 2.0, EdgeType: "sim"},
		{GenID: "e3", Src: "A", Dst: "C", Weight: 10.0, EdgeType: "lineage"},
	}
	for _, e := range seed {
		require.NoError(t, s.InsertEdge(ctx, e))
	}

	edges, err := s.LoadEdges(ctx, "sim")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].GenID)
	assert.Equal(t, "e2", edges[1].GenID)

	all, err := s.LoadEdges(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// A filter value that would break a string-interpolated clause must
	// simply match nothing.
	hostile, err := s.LoadEdges(ctx, `sim' OR '1'='1`)
	require.NoError(t, err)
	assert.Empty(t, hostile)
}

func TestInsertPathResult_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	res := &graph.PathResult{
		Src:         "A",
		Dst:         "C",
		Path:        []graph.NodeID{"A", "B", "C"},
		TotalWeight: 3.0,
		Algorithm:   "dijkstra+quicksort",
	}
	require.NoError(t, s.InsertPathResult(ctx, "path-abc12345", res, "run-77"))

	stored, err := s.PathResultsByRun(ctx, "run-77")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	assert.Equal(t, "path-abc12345", stored[0].GenID)
	assert.Equal(t, "run-77", stored[0].RunID)
	assert.Equal(t, res.Path, stored[0].Result.Path)
	assert.InDelta(t, 3.0, stored[0].Result.TotalWeight, 1e-9)
	assert.Equal(t, res.Algorithm, stored[0].Result.Algorithm)
}

func TestSchemaVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Fresh database: no schema_migrations table at all.
	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "none", version)

	_, err = s.DB().ExecContext(ctx,
		`CREATE TABLE schema_migrations (version TEXT PRIMARY KEY, checksum TEXT, applied_at TEXT)`)
	require.NoError(t, err)

	// Table exists but is empty.
	version, err = s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "none", version)

	_, err = s.DB().ExecContext(ctx,
		`INSERT INTO schema_migrations (version, checksum) VALUES ('V001', 'sha256:aa'), ('V002', 'sha256:bb')`)
	require.NoError(t, err)

	version, err = s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "V002", version)
}

func TestTableCount(t *testing.T) {
	s := openTestStore(t)

	count, err := s.TableCount(context.Background())
	require.NoError(t, err)
	// inode_counter, similarity_edges, path_results
	assert.Equal(t, 3, count)
}
