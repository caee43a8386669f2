package store

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/motherbox/internal/migrations"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// corrupt plants a malformed document under a namespace.
func corrupt(t *testing.T, s *Store, name string) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO kv (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, `{not json[`,
	)
	if err != nil {
		t.Fatalf("corrupt %s: %v", name, err)
	}
}
