package storage

import (
	"context"
	"slices"
	"sync"
)

type memoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() Storage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (m *memoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(value), nil
}

func (m *memoryStorage) Write(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = slices.Clone(value)

	return nil
}

func (m *memoryStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

func (m *memoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}
