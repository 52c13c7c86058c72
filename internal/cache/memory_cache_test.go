package cache_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := t.Context()
	cfg := &config.CacheConfig{DefaultTTL: time.Minute}

	t.Run("Round trip copies the value", func(t *testing.T) {
		// Arrange
		c := cache.NewMemoryCache(cfg)
		brands := []string{"Acme", "Globex"}
		require.NoError(t, c.Set(ctx, "catalog:brands", brands, 0))
		brands[0] = "Mutated"

		// Act
		var got []string
		found, err := c.Get(ctx, "catalog:brands", &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{"Acme", "Globex"}, got)
	})

	t.Run("Entries expire", func(t *testing.T) {
		c := cache.NewMemoryCache(cfg)
		require.NoError(t, c.Set(ctx, "catalog:brands", []string{"Acme"}, time.Millisecond))

		time.Sleep(5 * time.Millisecond)

		var got []string
		found, err := c.Get(ctx, "catalog:brands", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete and close", func(t *testing.T) {
		c := cache.NewMemoryCache(cfg)
		require.NoError(t, c.Set(ctx, "a", 1, 0))
		require.NoError(t, c.Set(ctx, "b", 2, 0))

		require.NoError(t, c.Delete(ctx, "a"))
		require.NoError(t, c.Close())

		var v int
		found, _ := c.Get(ctx, "a", &v)
		assert.False(t, found)
		found, _ = c.Get(ctx, "b", &v)
		assert.False(t, found)
	})

	t.Run("Instrumented wrapper passes through", func(t *testing.T) {
		c := cache.Instrumented(cache.NewMemoryCache(cfg))
		require.NoError(t, c.Set(ctx, "catalog:departments?per_page=100", []int{1}, 0))

		var got []int
		found, err := c.Get(ctx, "catalog:departments?per_page=100", &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int{1}, got)
	})
}

func TestNoopCache(t *testing.T) {
	c := cache.NewNoopCache()

	require.NoError(t, c.Set(t.Context(), "k", 1, time.Minute))

	var v int
	found, err := c.Get(t.Context(), "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(t.Context(), "k"))
	assert.NoError(t, c.Close())
}
