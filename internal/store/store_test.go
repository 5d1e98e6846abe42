package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/ifrshub/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestOpenFile.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPragmasOnEveryConnection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Hold several connections at once so the pool has to open new ones.
	conns := make([]*sql.Conn, 3)
	for i := range conns {
		c, err := s.DB().Conn(ctx)
		if err != nil {
			t.Fatalf("conn %d: %v", i, err)
		}
		defer c.Close()
		conns[i] = c
	}

	for i, c := range conns {
		var fk, timeout int
		if err := c.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk); err != nil {
			t.Fatalf("conn %d foreign_keys: %v", i, err)
		}
		if err := c.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout); err != nil {
			t.Fatalf("conn %d busy_timeout: %v", i, err)
		}
		if fk != 1 {
			t.Errorf("conn %d: foreign_keys = %d, want 1", i, fk)
		}
		if timeout != 5000 {
			t.Errorf("conn %d: busy_timeout = %d, want 5000", i, timeout)
		}
	}
}

func TestWithConnPragmas(t *testing.T) {
	if got := withConnPragmas("catalog.db"); !strings.HasPrefix(got, "catalog.db?_pragma=") {
		t.Errorf("plain path: got %q", got)
	}
	got := withConnPragmas("file:x?mode=memory")
	if !strings.HasPrefix(got, "file:x?mode=memory&_pragma=") {
		t.Errorf("dsn with query: got %q", got)
	}
	if n := strings.Count(got, "_pragma="); n != len(connPragmas) {
		t.Errorf("got %d pragmas, want %d", n, len(connPragmas))
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"catalog_imports", "catalog_items", "catalog_revision"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestLatestEmpty(t *testing.T) {
	s := openTestStore(t)
	imp, err := s.ImportRepo().Latest(context.Background())
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if imp != nil {
		t.Fatal("expected nil import when none exist")
	}
}

func TestSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ImportRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, catalog.Default(), "built-in")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" || saved.Revision != 1 {
		t.Fatalf("unexpected import header: id=%q revision=%d", saved.ID, saved.Revision)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.ID != saved.ID {
		t.Errorf("id = %q, want %q", got.ID, saved.ID)
	}
	if got.Source != "built-in" {
		t.Errorf("source = %q, want built-in", got.Source)
	}
	if !got.ImportedAt.Equal(saved.ImportedAt) {
		t.Errorf("imported_at = %v, want %v", got.ImportedAt, saved.ImportedAt)
	}

	want := catalog.Default().Standards().List()
	have := got.Library.Standards().List()
	if len(have) != len(want) {
		t.Fatalf("standards = %d, want %d", len(have), len(want))
	}
	for i := range want {
		if have[i].ID != want[i].ID {
			t.Errorf("standard[%d] = %q, want %q", i, have[i].ID, want[i].ID)
		}
	}
	if _, ok := got.Library.Course("ifrs-15"); !ok {
		t.Error("expected ifrs-15 course to survive the round trip")
	}
}

func TestLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ImportRepo()
	ctx := context.Background()

	var last *Import
	for i := 0; i < 3; i++ {
		imp, err := repo.Save(ctx, catalog.Default(), fmt.Sprintf("run-%d", i))
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		last = imp
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Revision != 3 || got.ID != last.ID {
		t.Errorf("latest = (%d, %s), want (3, %s)", got.Revision, got.ID, last.ID)
	}
}

func TestListCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ImportRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, catalog.Default(), "built-in"); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("imports = %d, want 1", len(list))
	}
	want := map[catalog.Kind]int{
		catalog.KindStandard: 6,
		catalog.KindExample:  6,
		catalog.KindTest:     4,
	}
	for k, n := range want {
		if list[0].Counts[k] != n {
			t.Errorf("count[%s] = %d, want %d", k, list[0].Counts[k], n)
		}
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ImportRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if _, err := repo.Save(ctx, catalog.Default(), ""); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM catalog_imports").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining imports = %d, want 5", count)
	}

	var items int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM catalog_items").Scan(&items); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items != 5*16 {
		t.Errorf("remaining items = %d, want %d", items, 5*16)
	}

	imp, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if imp.Revision != 7 {
		t.Errorf("latest revision = %d, want 7", imp.Revision)
	}
}

func TestPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ImportRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Save(ctx, catalog.Default(), ""); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("remaining imports = %d, want 2", len(list))
	}
}

func TestRevisionCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rc, err := newRevisionCounter(s.DB())
	if err != nil {
		t.Fatalf("new revision counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		rev, err := rc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); rev != want {
			t.Errorf("rev[%d] = %d, want %d", i, rev, want)
		}
	}
}
