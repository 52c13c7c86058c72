package cache

import (
	"context"
	"strings"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const CatalogKeyPrefix = "catalog"

// endpoint is the cache key's leading segment after the catalog prefix, used
// as a metrics label.
func endpoint(key string) string {
	key = strings.TrimPrefix(key, CatalogKeyPrefix+":")

	if i := strings.IndexAny(key, ":?"); i >= 0 {
		key = key[:i]
	}

	return key
}
