// Package store persists per-user interaction state: watchlist, favorites,
// watched markers, and the profile record. State is scoped to the local
// device; reads fail soft to empty defaults so a corrupt value never takes
// the UI down.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// SetName identifies one of the interaction-state namespaces.
type SetName string

const (
	SetWatchlist       SetName = "watchlist"
	SetFavorites       SetName = "favorites"
	SetWatched         SetName = "watched"
	SetWatchedEpisodes SetName = "watchedEpisodes"
)

const profileKey = "userProfile"

// namespaces lists every key ClearAll erases.
var namespaces = []string{
	string(SetWatchlist),
	string(SetFavorites),
	string(SetWatched),
	string(SetWatchedEpisodes),
	profileKey,
}

// Store provides access to interaction state.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a store over an already-migrated database.
func New(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// read returns the raw JSON document for a namespace, or ok=false when the
// namespace has never been written.
func (s *Store) read(name string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("kv read failed", "namespace", name, "error", err)
		return nil, false
	}
	return []byte(value), true
}

// write persists a JSON-encodable document under a namespace.
func (s *Store) write(name string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ClearAll erases every namespace, sets and profile alike, in one
// transaction so no torn state is observable afterward.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer tx.Rollback()

	for _, name := range namespaces {
		if _, err := tx.Exec(`DELETE FROM kv WHERE name = ?`, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return tx.Commit()
}
