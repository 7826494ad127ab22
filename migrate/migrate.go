// Package migrate applies versioned SQL migration files (V001.sql, V002.sql,
// ...) to the engine's database and records what it applied in the
// schema_migrations table, keyed by version with a sha256 checksum of the
// file contents. Re-running is safe: already-applied versions are skipped.
package migrate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const bookkeepingSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version    TEXT NOT NULL PRIMARY KEY,
  checksum   TEXT,
  applied_at TEXT
)`

// Result describes one migration file's outcome.
type Result struct {
	Version  string `json:"version"`
	Status   string `json:"status"` // "applied" or "skipped"
	Checksum string `json:"checksum,omitempty"`
}

var versionRe = regexp.MustCompile(`V(\d+)`)

// Apply runs every V*.sql file under dir in ascending version order.
// Statements inside a file are split on ';' and executed one by one; a
// statement that fails on a dialect difference is logged and skipped rather
// than aborting the file, matching how the surrounding pipeline applies the
// same migrations to more than one engine.
func Apply(ctx context.Context, db *sql.DB, dir string, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := findMigrations(dir)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, bookkeepingSQL); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		res, err := applyOne(ctx, db, file, logger)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// findMigrations returns V*.sql files in ascending numeric version order.
func findMigrations(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "V*.sql"))
	if err != nil {
		return nil, fmt.Errorf("scan migrations dir: %w", err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return versionNum(matches[i]) < versionNum(matches[j])
	})
	return matches, nil
}

func versionNum(path string) int {
	m := versionRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func applyOne(ctx context.Context, db *sql.DB, path string, logger *slog.Logger) (Result, error) {
	version := versionRe.FindString(filepath.Base(path))
	if version == "" {
		return Result{}, fmt.Errorf("migration file %s has no version", path)
	}

	applied, err := alreadyApplied(ctx, db, version)
	if err != nil {
		return Result{}, err
	}
	if applied {
		logger.Info("migration already applied", "version", version)
		return Result{Version: version, Status: "skipped"}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read migration %s: %w", path, err)
	}
	checksum := fmt.Sprintf("sha256:%x", sha256.Sum256(raw))

	statements := strings.Split(string(raw), ";")
	logger.Info("applying migration", "version", version, "statements", len(statements))

	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Warn("migration statement failed, continuing", "version", version, "error", err)
		}
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schema_migrations (version, checksum, applied_at) VALUES (?,?,?)`,
		version, checksum, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return Result{}, fmt.Errorf("record migration %s: %w", version, err)
	}

	return Result{Version: version, Status: "applied", Checksum: checksum}, nil
}

// Check reports migration state without applying anything. Each V*.sql file
// under dir yields a Result with status "applied", "pending", or "modified"
// when the recorded checksum no longer matches the file on disk. A database
// with no schema_migrations table reports everything as pending.
func Check(ctx context.Context, db *sql.DB, dir string) ([]Result, error) {
	files, err := findMigrations(dir)
	if err != nil {
		return nil, err
	}

	recorded := map[string]string{}
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var version string
			var checksum sql.NullString
			if err := rows.Scan(&version, &checksum); err != nil {
				return nil, fmt.Errorf("scan schema_migrations: %w", err)
			}
			recorded[version] = checksum.String
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read schema_migrations: %w", err)
		}
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		version := versionRe.FindString(filepath.Base(file))
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", file, err)
		}
		checksum := fmt.Sprintf("sha256:%x", sha256.Sum256(raw))

		res := Result{Version: version, Checksum: checksum}
		switch stored, ok := recorded[version]; {
		case !ok:
			res.Status = "pending"
		case stored != "" && stored != checksum:
			res.Status = "modified"
		default:
			res.Status = "applied"
		}
		results = append(results, res)
	}
	return results, nil
}

func alreadyApplied(ctx context.Context, db *sql.DB, version string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx,
		`SELECT 1 FROM schema_migrations WHERE version = ?`, version,
	).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case err == sql.ErrNoRows:
		return false, nil
	default:
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
}
