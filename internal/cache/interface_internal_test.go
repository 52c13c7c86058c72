package cache

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "brands", endpoint("catalog:brands"))
	assert.Equal(t, "departments", endpoint("catalog:departments?per_page=100"))
	assert.Equal(t, "department", endpoint("department:42"))
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryCacheBounds(t *testing.T) {
	ctx := t.Context()

	t.Run("Expired entries are reclaimed without being read", func(t *testing.T) {
		// Arrange
		clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
		c := newMemoryCache(&config.CacheConfig{DefaultTTL: time.Minute, MaxEntries: 100}, clock.Now)

		for _, key := range []string{"catalog:products?page=1", "catalog:products?page=2", "catalog:products?page=3"} {
			require.NoError(t, c.Set(ctx, key, []int{1}, 0))
		}

		// Act
		clock.Advance(2 * time.Minute)
		require.NoError(t, c.Set(ctx, "catalog:brands", []string{"Acme"}, 0))

		// Assert
		assert.Equal(t, 1, c.Len())
	})

	t.Run("A full cache evicts the entry closest to expiry", func(t *testing.T) {
		// Arrange
		clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
		c := newMemoryCache(&config.CacheConfig{DefaultTTL: time.Hour, MaxEntries: 2}, clock.Now)

		require.NoError(t, c.Set(ctx, "short", 1, time.Minute))
		require.NoError(t, c.Set(ctx, "long", 2, 10*time.Minute))

		// Act
		require.NoError(t, c.Set(ctx, "new", 3, 5*time.Minute))
		require.NoError(t, c.Set(ctx, "long", 4, 10*time.Minute))

		// Assert
		assert.Equal(t, 2, c.Len())

		var v int
		found, err := c.Get(ctx, "short", &v)
		require.NoError(t, err)
		assert.False(t, found)

		found, err = c.Get(ctx, "long", &v)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 4, v)

		found, err = c.Get(ctx, "new", &v)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Zero limit falls back to the default", func(t *testing.T) {
		c := newMemoryCache(&config.CacheConfig{DefaultTTL: time.Minute}, time.Now)

		assert.Equal(t, defaultMaxEntries, c.maxEntries)
	})
}
