package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

const defaultMaxEntries = 1000

// memoryCache keeps JSON-encoded values in process, so callers get the same
// copy semantics as with redis. It holds at most maxEntries values: expired
// entries are swept once per TTL, and a full cache evicts the entry closest
// to expiry.
type memoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	cfg        *config.CacheConfig
	maxEntries int
	nextSweep  time.Time
	now        func() time.Time
}

func NewMemoryCache(cfg *config.CacheConfig) Cache {
	return newMemoryCache(cfg, time.Now)
}

func newMemoryCache(cfg *config.CacheConfig, now func() time.Time) *memoryCache {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	return &memoryCache{
		entries:    make(map[string]memoryEntry),
		cfg:        cfg,
		maxEntries: maxEntries,
		nextSweep:  now().Add(cfg.DefaultTTL),
		now:        now,
	}
}

func (m *memoryCache) Get(ctx context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = m.cfg.DefaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if !now.Before(m.nextSweep) {
		m.sweepLocked(now)
	}

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		m.sweepLocked(now)

		if len(m.entries) >= m.maxEntries {
			m.evictSoonestLocked()
		}
	}

	m.entries[key] = memoryEntry{data: data, expiresAt: now.Add(ttl)}

	return nil
}

func (m *memoryCache) sweepLocked(now time.Time) {
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
		}
	}

	m.nextSweep = now.Add(m.cfg.DefaultTTL)
}

func (m *memoryCache) evictSoonestLocked() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)

	for key, entry := range m.entries {
		if !found || entry.expiresAt.Before(soonest) {
			victim, soonest, found = key, entry.expiresAt, true
		}
	}

	if found {
		delete(m.entries, victim)
	}
}

func (m *memoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Close() error {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()

	return nil
}

type noopCache struct{}

// NewNoopCache never stores anything.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error { return nil }
func (noopCache) Close() error { return nil }
