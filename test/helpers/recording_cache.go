package helpers

import (
	"sync"
	"time"
)

// RecordingCache is a map-backed cache that remembers every removal.
// Entries never expire.
type RecordingCache struct {
	mu      sync.Mutex
	entries map[string]any
	removed []string
}

func NewRecordingCache() *RecordingCache {
	return &RecordingCache{entries: make(map[string]any)}
}

func (c *RecordingCache) TryGet(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *RecordingCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *RecordingCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.removed = append(c.removed, key)
}

// Removed lists removed keys in call order
func (c *RecordingCache) Removed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.removed...)
}

func (c *RecordingCache) Has(key string) bool {
	_, ok := c.TryGet(key)
	return ok
}
