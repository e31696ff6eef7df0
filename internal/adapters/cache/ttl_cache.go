package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// LookupRecorder observes cache hits and misses
type LookupRecorder interface {
	RecordCacheLookup(hit bool)
}

// TTLCache is a process-local cache with absolute expiry.
// Reads never extend an entry's lifetime.
type TTLCache struct {
	items    *ttlcache.Cache[string, any]
	recorder LookupRecorder
}

// NewTTLCache creates a cache whose entries live for defaultTTL unless Set says otherwise.
// Call Close to stop the expiry loop.
func NewTTLCache(defaultTTL time.Duration, recorder LookupRecorder) *TTLCache {
	items := ttlcache.New(
		ttlcache.WithTTL[string, any](defaultTTL),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	go items.Start()

	return &TTLCache{
		items:    items,
		recorder: recorder,
	}
}

func (c *TTLCache) TryGet(key string) (any, bool) {
	item := c.items.Get(key)
	hit := item != nil && !item.IsExpired()
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(hit)
	}
	if !hit {
		return nil, false
	}
	return item.Value(), true
}

// Set stores value for ttl; zero means the cache default.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = ttlcache.DefaultTTL
	}
	c.items.Set(key, value, ttl)
}

// Remove evicts key. Removing an absent key is a no-op.
func (c *TTLCache) Remove(key string) {
	c.items.Delete(key)
}

func (c *TTLCache) Len() int {
	return c.items.Len()
}

// Close stops the background expiry loop
func (c *TTLCache) Close() {
	c.items.Stop()
}
