package cache

import (
	"sync"
	"time"

	"github.com/bluele/gcache"
)

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// Cache memoizes query results behind an LRU store with optional TTL
// expiry. A single mutex covers the lookup-compute-store sequence, so
// concurrent callers asking for the same key compute the value once.
type Cache struct {
	mu sync.Mutex
	gc gcache.Cache
}

// New builds a cache holding at most capacity entries. A ttl of zero
// disables expiry; entries then live until evicted.
func New(capacity int, ttl time.Duration) *Cache {
	b := gcache.New(capacity).LRU()
	if ttl > 0 {
		b = b.Expiration(ttl)
	}
	return &Cache{gc: b.Build()}
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss. The returned bool reports whether the value came from the
// cache. Errors from fn are returned to the caller and never stored, so a
// failed computation is retried on the next call.
func (c *Cache) GetOrCompute(key string, fn func() (any, error)) (any, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, err := c.gc.Get(key); err == nil {
		return v, true, nil
	}
	v, err := fn()
	if err != nil {
		return nil, false, err
	}
	_ = c.gc.Set(key, v)
	return v, false, nil
}

// Stats reports hit and miss counters and the current live entry count.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:    c.gc.HitCount(),
		Misses:  c.gc.MissCount(),
		Entries: c.gc.Len(true),
	}
}

// Purge drops every entry. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gc.Purge()
}
