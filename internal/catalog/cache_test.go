package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache(time.Hour)

	// Miss
	_, ok := c.get(1)
	assert.False(t, ok, "empty cache should miss")

	// Set and hit
	c.set(1, &Movie{ID: 1, Title: "Man of Steel"})

	got, ok := c.get(1)
	require.True(t, ok, "should hit after set")
	assert.Equal(t, "Man of Steel", got.Title)

	// Different ID should miss
	_, ok = c.get(42)
	assert.False(t, ok, "different ID should miss")

	c.set(42, &Movie{ID: 42, Title: "Peacemaker"})

	got2, ok := c.get(42)
	require.True(t, ok, "should hit second title")
	assert.Equal(t, "Peacemaker", got2.Title)

	// First entry unaffected
	got, ok = c.get(1)
	require.True(t, ok, "first entry should still exist")
	assert.Equal(t, "Man of Steel", got.Title)
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)

	c.set(1, &Movie{ID: 1, Title: "Watchmen"})

	// Should hit immediately
	_, ok := c.get(1)
	require.True(t, ok)

	// Wait for expiry
	time.Sleep(20 * time.Millisecond)

	// Should miss after expiry
	_, ok = c.get(1)
	assert.False(t, ok, "should miss after TTL")
}
