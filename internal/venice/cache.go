package venice

import (
	"sync"
	"time"
)

// DefaultCacheTTL matches the session cache lifetime of the documentation
// widget this service replaces.
const DefaultCacheTTL = 5 * time.Minute

// CacheStore is the injectable snapshot cache. Implementations hold opaque
// bytes; expiry is the store's concern. Tests supply a fresh store per case
// instead of sharing module-level state.
type CacheStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Clear()
}

type cacheEntry struct {
	value   []byte
	written time.Time
}

// TTLCache is an in-memory CacheStore whose entries expire after a fixed
// duration. Expired entries are dropped lazily on read.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewTTLCache creates a cache with the given TTL. A zero TTL uses
// DefaultCacheTTL.
func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if it has not expired.
func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.written) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key, restarting its TTL.
func (c *TTLCache) Set(key string, value []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, written: c.now()}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
