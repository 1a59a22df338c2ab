package venice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheRoundTrip(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Set("k", []byte("v"))

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	cache := NewTTLCache(5 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("k", []byte("v"))

	now = now.Add(5 * time.Minute)
	_, ok := cache.Get("k")
	assert.True(t, ok, "an entry at exactly its TTL is still live")

	now = now.Add(time.Second)
	_, ok = cache.Get("k")
	assert.False(t, ok, "past the TTL the entry is gone")

	// Re-setting restarts the clock.
	cache.Set("k", []byte("v2"))
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}

func TestTTLCacheClear(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Set("a", []byte("1"))
	cache.Set("b", []byte("2"))
	cache.Clear()

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}

func TestTTLCacheZeroTTLUsesDefault(t *testing.T) {
	cache := NewTTLCache(0)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}
