package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ifrshub/internal/catalog"
)

// Import is one stored catalog revision.
type Import struct {
	ID         string
	Revision   int64
	ImportedAt time.Time
	Source     string
	Library    *catalog.Library
}

// ImportSummary describes an import without decoding its document.
type ImportSummary struct {
	ID         string
	Revision   int64
	ImportedAt time.Time
	Source     string
	Counts     map[catalog.Kind]int
}

// ImportRepo manages stored catalog revisions.
type ImportRepo interface {
	// Save stores lib as a new revision. Source records where it came from.
	Save(ctx context.Context, lib *catalog.Library, source string) (*Import, error)

	// Latest returns the newest revision, or nil if none exist.
	Latest(ctx context.Context) (*Import, error)

	// List returns summaries of all revisions, newest first.
	List(ctx context.Context) ([]ImportSummary, error)

	// Prune deletes all but the N most recent revisions.
	Prune(ctx context.Context, keep int) error
}

type importRepo struct {
	db       *sql.DB
	revision *revisionCounter
}

func (r *importRepo) Save(ctx context.Context, lib *catalog.Library, source string) (*Import, error) {
	doc, err := catalog.Marshal(lib)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}

	rev, err := r.revision.Next(ctx)
	if err != nil {
		return nil, err
	}

	imp := &Import{
		ID:         uuid.NewString(),
		Revision:   rev,
		ImportedAt: time.Now().UTC().Truncate(time.Millisecond),
		Source:     source,
		Library:    lib,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO catalog_imports (id, revision, imported_at, source, document) VALUES (?, ?, ?, ?, ?)`,
		imp.ID, imp.Revision, imp.ImportedAt.UnixMilli(), imp.Source, doc,
	)
	if err != nil {
		return nil, fmt.Errorf("insert import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO catalog_items (import_id, kind, position, item_id, title, category, standard) VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare items: %w", err)
	}
	defer stmt.Close()

	for _, k := range catalog.AllKinds() {
		for pos, it := range lib.ByKind(k).List() {
			if _, err := stmt.ExecContext(ctx, imp.ID, string(k), pos, it.ID, it.Title, it.Category, it.Standard); err != nil {
				return nil, fmt.Errorf("insert %s %q: %w", k, it.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return imp, nil
}

func (r *importRepo) Latest(ctx context.Context) (*Import, error) {
	var (
		imp Import
		ms  int64
		doc []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, revision, imported_at, source, document FROM catalog_imports ORDER BY revision DESC LIMIT 1`,
	).Scan(&imp.ID, &imp.Revision, &ms, &imp.Source, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest import: %w", err)
	}
	imp.ImportedAt = time.UnixMilli(ms).UTC()

	lib, err := catalog.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("decode import %s: %w", imp.ID, err)
	}
	imp.Library = lib
	return &imp, nil
}

func (r *importRepo) List(ctx context.Context) ([]ImportSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, revision, imported_at, source FROM catalog_imports ORDER BY revision DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}

	var out []ImportSummary
	for rows.Next() {
		var (
			s  ImportSummary
			ms int64
		)
		if err := rows.Scan(&s.ID, &s.Revision, &ms, &s.Source); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan import: %w", err)
		}
		s.ImportedAt = time.UnixMilli(ms).UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate imports: %w", err)
	}
	rows.Close()

	for i := range out {
		counts, err := r.counts(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Counts = counts
	}
	return out, nil
}

func (r *importRepo) counts(ctx context.Context, importID string) (map[catalog.Kind]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM catalog_items WHERE import_id = ? GROUP BY kind`, importID,
	)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	defer rows.Close()

	counts := make(map[catalog.Kind]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[catalog.Kind(kind)] = n
	}
	return counts, rows.Err()
}

func (r *importRepo) Prune(ctx context.Context, keep int) error {
	var threshold int64
	err := r.db.QueryRowContext(ctx,
		`SELECT revision FROM catalog_imports ORDER BY revision DESC LIMIT 1 OFFSET ?`, keep,
	).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep revisions exist
	}
	if err != nil {
		return fmt.Errorf("query imports for prune: %w", err)
	}

	// Item rows go with their import through ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalog_imports WHERE revision <= ?`, threshold); err != nil {
		return fmt.Errorf("prune imports: %w", err)
	}
	return nil
}
