package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// revisionCounter hands out the monotonically increasing revision number
// stamped on every import. Import ids are random UUIDs, so ordering comes
// from this counter rather than from the primary key.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type revisionCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newRevisionCounter creates a counter and ensures the tracking table exists.
func newRevisionCounter(db *sql.DB) (*revisionCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS catalog_revision (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create revision table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO catalog_revision (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed revision: %w", err)
	}

	return &revisionCounter{db: db}, nil
}

// Next atomically returns the next revision and increments the counter.
func (rc *revisionCounter) Next(ctx context.Context) (int64, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	var rev int64
	err := rc.db.QueryRowContext(ctx,
		`UPDATE catalog_revision SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("next revision: %w", err)
	}
	return rev, nil
}
