// Package cache provides a small in-memory TTL cache. Expiry is
// checked on read; there is no background sweeper and no capacity
// bound, which is acceptable for the bounded key sets it serves
// (category keys, upstream proxy endpoints).
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache memoizes values per key for a fixed duration.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Cache whose entries expire after ttl.
func New[V any](ttl time.Duration) *Cache[V] {
	return NewWithClock[V](ttl, time.Now)
}

// NewWithClock creates a Cache with an injected clock so tests can
// control time.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key if it is still fresh. A value
// is fresh while less than the TTL has elapsed since it was stored.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Age returns how long ago the fresh value for key was stored.
// Returns false on a miss or an expired entry.
func (c *Cache[V]) Age(key string) (time.Duration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	age := c.now().Sub(e.storedAt)
	if age >= c.ttl {
		return 0, false
	}
	return age, true
}

// Set stores value under key with the current timestamp,
// unconditionally overwriting any prior entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}
