package migrate

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func writeMigrations(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "V001.sql"),
		[]byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);\nCREATE TABLE gadgets (id TEXT PRIMARY KEY);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V002.sql"),
		[]byte("ALTER TABLE widgets ADD COLUMN name TEXT;"), 0o644))
	// A stray non-migration file must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644))
	return dir
}

func TestApply_RunsInVersionOrder(t *testing.T) {
	db := openTestDB(t)
	dir := writeMigrations(t)

	results, err := Apply(context.Background(), db, dir, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "V001", results[0].Version)
	assert.Equal(t, "applied", results[0].Status)
	assert.Contains(t, results[0].Checksum, "sha256:")
	assert.Equal(t, "V002", results[1].Version)

	// The V002 ALTER only works if V001 ran first.
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('widgets') WHERE name = 'name'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestApply_SecondRunSkips(t *testing.T) {
	db := openTestDB(t)
	dir := writeMigrations(t)
	ctx := context.Background()

	_, err := Apply(ctx, db, dir, nil)
	require.NoError(t, err)

	results, err := Apply(ctx, db, dir, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "skipped", results[0].Status)
	assert.Equal(t, "skipped", results[1].Status)
}

func TestApply_EmptyDir(t *testing.T) {
	db := openTestDB(t)

	results, err := Apply(context.Background(), db, t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCheck(t *testing.T) {
	db := openTestDB(t)
	dir := writeMigrations(t)
	ctx := context.Background()

	results, err := Check(ctx, db, dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "pending", results[0].Status)
	assert.Equal(t, "pending", results[1].Status)

	_, err = Apply(ctx, db, dir, nil)
	require.NoError(t, err)

	results, err = Check(ctx, db, dir)
	require.NoError(t, err)
	assert.Equal(t, "applied", results[0].Status)
	assert.Equal(t, "applied", results[1].Status)

	// Editing an applied file makes its checksum stale.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V002.sql"),
		[]byte("ALTER TABLE widgets ADD COLUMN renamed TEXT;"), 0o644))

	results, err = Check(ctx, db, dir)
	require.NoError(t, err)
	assert.Equal(t, "applied", results[0].Status)
	assert.Equal(t, "modified", results[1].Status)
}

func TestApply_NumericOrderNotLexicographic(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()

	// V9 must run before V10 even though "V10" < "V9" lexicographically.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V9.sql"),
		[]byte("CREATE TABLE first_table (id TEXT);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V10.sql"),
		[]byte("ALTER TABLE first_table ADD COLUMN extra TEXT;"), 0o644))

	results, err := Apply(context.Background(), db, dir, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "V9", results[0].Version)
	assert.Equal(t, "V10", results[1].Version)
}
