package store

import (
	"encoding/json"
	"fmt"
	"slices"
)

// GetSet returns the ids in a namespace in insertion order. An unwritten or
// malformed namespace yields an empty set; corruption is logged, not
// returned.
func (s *Store) GetSet(name SetName) []int64 {
	raw, ok := s.read(string(name))
	if !ok {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warn("malformed set, treating as empty", "namespace", name, "error", err)
		return nil
	}
	return ids
}

// Contains reports membership of id in the named set.
func (s *Store) Contains(name SetName, id int64) bool {
	return slices.Contains(s.GetSet(name), id)
}

// Toggle removes id when present, appends it otherwise, and persists the
// set immediately. Removal keeps the relative order of the remaining
// elements. A write failure is logged and swallowed; the next read shows
// the old state.
func (s *Store) Toggle(name SetName, id int64) {
	ids := s.GetSet(name)
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
	}
	if err := s.write(string(name), ids); err != nil {
		s.logger.Error("set toggle not persisted", "namespace", name, "id", id, "error", err)
	}
}

// EpisodeKey derives the globally unique watched key for one episode from
// the title id, season number, and episode number. The format is stable;
// stored keys depend on it.
func EpisodeKey(id int64, season, episode int) string {
	return fmt.Sprintf("%d-s%de%d", id, season, episode)
}

// WatchedEpisodes returns the composite episode keys in insertion order,
// with the same fail-soft contract as GetSet.
func (s *Store) WatchedEpisodes() []string {
	raw, ok := s.read(string(SetWatchedEpisodes))
	if !ok {
		return nil
	}
	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		s.logger.Warn("malformed set, treating as empty", "namespace", SetWatchedEpisodes, "error", err)
		return nil
	}
	return keys
}

// IsEpisodeWatched reports whether the composite key is marked watched.
func (s *Store) IsEpisodeWatched(key string) bool {
	return slices.Contains(s.WatchedEpisodes(), key)
}

// ToggleEpisode flips the watched marker for a composite episode key.
func (s *Store) ToggleEpisode(key string) {
	keys := s.WatchedEpisodes()
	if i := slices.Index(keys, key); i >= 0 {
		keys = slices.Delete(keys, i, i+1)
	} else {
		keys = append(keys, key)
	}
	if err := s.write(string(SetWatchedEpisodes), keys); err != nil {
		s.logger.Error("episode toggle not persisted", "key", key, "error", err)
	}
}

// Stats holds the cardinality of each interaction set, for the profile page.
type Stats struct {
	Watchlist       int
	Favorites       int
	Watched         int
	WatchedEpisodes int
}

// Stats counts the members of all four sets.
func (s *Store) Stats() Stats {
	return Stats{
		Watchlist:       len(s.GetSet(SetWatchlist)),
		Favorites:       len(s.GetSet(SetFavorites)),
		Watched:         len(s.GetSet(SetWatched)),
		WatchedEpisodes: len(s.WatchedEpisodes()),
	}
}
