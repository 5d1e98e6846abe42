// Package store keeps imported catalog revisions in a SQLite database so the
// dashboard can serve content edited outside the built-in sample data.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the catalog database.
type Store struct {
	db       *sql.DB
	revision *revisionCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withConnPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	rc, err := newRevisionCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, revision: rc}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportRepo returns an ImportRepo backed by this store.
func (s *Store) ImportRepo() ImportRepo {
	return &importRepo{db: s.db, revision: s.revision}
}

// connPragmas are per-connection settings. The driver runs them on every
// connection it opens for the pool.
var connPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// withConnPragmas appends connPragmas to dsn as _pragma query parameters.
func withConnPragmas(dsn string) string {
	q := make(url.Values)
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + q.Encode()
}

// applyPragmas sets database-wide options. The journal mode is stored in
// the file, so one connection is enough.
func applyPragmas(db *sql.DB) error {
	const p = "PRAGMA journal_mode = WAL"
	if _, err := db.Exec(p); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS catalog_imports (
		id          TEXT PRIMARY KEY,
		revision    INTEGER NOT NULL UNIQUE,
		imported_at INTEGER NOT NULL,
		source      TEXT NOT NULL DEFAULT '',
		document    BLOB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_items (
		import_id TEXT NOT NULL REFERENCES catalog_imports(id) ON DELETE CASCADE,
		kind      TEXT NOT NULL,
		position  INTEGER NOT NULL,
		item_id   TEXT NOT NULL,
		title     TEXT NOT NULL,
		category  TEXT NOT NULL DEFAULT '',
		standard  TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (import_id, kind, item_id)
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. IFRSHUB_DB environment variable
// 2. $XDG_DATA_HOME/ifrshub/catalog.db
// 3. ~/.local/share/ifrshub/catalog.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("IFRSHUB_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "ifrshub", "catalog.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
