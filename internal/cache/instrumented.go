package cache

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/metrics"
)

type instrumented struct {
	Cache
}

// Instrumented counts hits and misses of c per catalog endpoint.
func Instrumented(c Cache) Cache {
	return &instrumented{Cache: c}
}

func (i *instrumented) Get(ctx context.Context, key string, value any) (bool, error) {
	found, err := i.Cache.Get(ctx, key, value)
	if err == nil {
		metrics.CatalogCacheLookup(endpoint(key), found)
	}

	return found, err
}
