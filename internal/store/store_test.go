package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Toggle_AppendsAndRemoves(t *testing.T) {
	s := setupStore(t)

	assert.Empty(t, s.GetSet(SetWatchlist))

	s.Toggle(SetWatchlist, 7)
	s.Toggle(SetWatchlist, 3)
	s.Toggle(SetWatchlist, 9)
	assert.Equal(t, []int64{7, 3, 9}, s.GetSet(SetWatchlist), "insertion order preserved")

	assert.True(t, s.Contains(SetWatchlist, 3))
	assert.False(t, s.Contains(SetWatchlist, 4))

	// Removing the middle element keeps the relative order of the rest.
	s.Toggle(SetWatchlist, 3)
	assert.Equal(t, []int64{7, 9}, s.GetSet(SetWatchlist))
}

func TestStore_Toggle_TwiceRestoresSet(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetFavorites, 1)
	s.Toggle(SetFavorites, 2)
	s.Toggle(SetFavorites, 3)
	before := s.GetSet(SetFavorites)

	s.Toggle(SetFavorites, 2)
	s.Toggle(SetFavorites, 2)

	assert.Equal(t, before, s.GetSet(SetFavorites),
		"double toggle must restore content and order")
}

func TestStore_Toggle_PersistsImmediately(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetWatched, 42)

	// A second store over the same database sees the write.
	s2 := New(s.db, s.logger)
	assert.True(t, s2.Contains(SetWatched, 42))
}

func TestStore_GetSet_MalformedValueIsEmpty(t *testing.T) {
	s := setupStore(t)

	corrupt(t, s, string(SetWatchlist))
	assert.Empty(t, s.GetSet(SetWatchlist), "corruption degrades to empty, not error")

	// The namespace is usable again after the next toggle.
	s.Toggle(SetWatchlist, 5)
	assert.Equal(t, []int64{5}, s.GetSet(SetWatchlist))
}

func TestStore_SetsAreIndependent(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetWatchlist, 1)
	s.Toggle(SetFavorites, 2)
	s.Toggle(SetWatched, 3)

	assert.Equal(t, []int64{1}, s.GetSet(SetWatchlist))
	assert.Equal(t, []int64{2}, s.GetSet(SetFavorites))
	assert.Equal(t, []int64{3}, s.GetSet(SetWatched))
}

func TestEpisodeKey_Deterministic(t *testing.T) {
	assert.Equal(t, "42-s1e3", EpisodeKey(42, 1, 3))
	assert.Equal(t, EpisodeKey(42, 1, 3), EpisodeKey(42, 1, 3))
	assert.NotEqual(t, EpisodeKey(42, 1, 3), EpisodeKey(42, 3, 1))
}

func TestStore_ToggleEpisode_DisjointFromWatched(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetWatched, 42)
	s.ToggleEpisode(EpisodeKey(42, 1, 3))

	assert.True(t, s.IsEpisodeWatched("42-s1e3"))
	assert.Equal(t, []int64{42}, s.GetSet(SetWatched))

	// Untoggling the episode leaves the movie marker alone.
	s.ToggleEpisode(EpisodeKey(42, 1, 3))
	assert.False(t, s.IsEpisodeWatched("42-s1e3"))
	assert.True(t, s.Contains(SetWatched, 42))
}

func TestStore_Stats(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetWatchlist, 1)
	s.Toggle(SetWatchlist, 2)
	s.Toggle(SetFavorites, 1)
	s.ToggleEpisode(EpisodeKey(5, 1, 1))
	s.ToggleEpisode(EpisodeKey(5, 1, 2))
	s.ToggleEpisode(EpisodeKey(5, 2, 1))

	stats := s.Stats()
	assert.Equal(t, 2, stats.Watchlist)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 0, stats.Watched)
	assert.Equal(t, 3, stats.WatchedEpisodes)
}

func TestStore_ClearAll(t *testing.T) {
	s := setupStore(t)

	s.Toggle(SetWatchlist, 1)
	s.Toggle(SetFavorites, 2)
	s.Toggle(SetWatched, 3)
	s.ToggleEpisode("3-s1e1")
	p := s.Profile()
	p.Username = "Kara"
	require.NoError(t, s.SaveProfile(p))

	require.NoError(t, s.ClearAll())

	assert.Empty(t, s.GetSet(SetWatchlist))
	assert.Empty(t, s.GetSet(SetFavorites))
	assert.Empty(t, s.GetSet(SetWatched))
	assert.Empty(t, s.WatchedEpisodes())

	fresh := s.Profile()
	assert.Equal(t, "DC Fan", fresh.Username, "profile back to defaults after clear")
}
