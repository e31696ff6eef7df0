package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/cache"
)

type countingRecorder struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (r *countingRecorder) RecordCacheLookup(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func TestTTLCache_SetGetRemove(t *testing.T) {
	// Arrange
	recorder := &countingRecorder{}
	c := cache.NewTTLCache(time.Minute, recorder)
	t.Cleanup(c.Close)

	// Act & Assert
	_, ok := c.TryGet("teams:all")
	assert.False(t, ok)

	c.Set("teams:all", []string{"Bulls"}, 0)
	value, ok := c.TryGet("teams:all")
	require.True(t, ok)
	assert.Equal(t, []string{"Bulls"}, value)

	c.Remove("teams:all")
	_, ok = c.TryGet("teams:all")
	assert.False(t, ok)

	assert.Equal(t, 1, recorder.hits)
	assert.Equal(t, 2, recorder.misses)
}

func TestTTLCache_RemoveAbsentKeyIsNoop(t *testing.T) {
	c := cache.NewTTLCache(time.Minute, nil)
	t.Cleanup(c.Close)

	assert.NotPanics(t, func() { c.Remove("missing") })
	assert.Zero(t, c.Len())
}

func TestTTLCache_ExpiryIsAbsolute(t *testing.T) {
	// Arrange
	c := cache.NewTTLCache(time.Minute, nil)
	t.Cleanup(c.Close)
	c.Set("k", "v", 150*time.Millisecond)

	// Act: reads during the lifetime must not extend it
	for i := 0; i < 3; i++ {
		time.Sleep(40 * time.Millisecond)
		_, ok := c.TryGet("k")
		require.True(t, ok)
	}

	// Assert
	assert.Eventually(t, func() bool {
		_, ok := c.TryGet("k")
		return !ok
	}, time.Second, 20*time.Millisecond)
}
