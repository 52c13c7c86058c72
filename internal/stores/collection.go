package stores

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

type EventKind string

const (
	EventAdded     EventKind = "added"
	EventDuplicate EventKind = "duplicate"
	EventUpdated   EventKind = "updated"
	EventRemoved   EventKind = "removed"
	EventCleared   EventKind = "cleared"
)

// Event is published to subscribers after every mutation has been persisted.
type Event struct {
	Store    string    `json:"store"`
	Kind     EventKind `json:"kind"`
	ItemID   int64     `json:"item_id,omitempty"`
	ItemName string    `json:"item_name,omitempty"`
}

// Collection is an ordered list of uniquely identified items mirrored in full
// to a single storage key. Mutations never fail: storage problems are logged
// and, when storage is unavailable, the collection keeps working in memory
// only.
type Collection[T any] struct {
	name    string
	key     string
	storage storage.Storage
	idOf    func(T) int64
	labelOf func(T) string

	mu       sync.RWMutex
	items    []T
	index    map[int64]int
	degraded bool

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func NewCollection[T any](name, key string, st storage.Storage, idOf func(T) int64, labelOf func(T) string) *Collection[T] {
	return &Collection[T]{
		name:    name,
		key:     key,
		storage: st,
		idOf:    idOf,
		labelOf: labelOf,
		index:   make(map[int64]int),
		subs:    make(map[int]func(Event)),
	}
}

func (c *Collection[T]) Name() string { return c.name }

// Load replaces the in-memory state with the stored collection. A missing key,
// malformed content or an unreachable backend all leave the collection empty.
func (c *Collection[T]) Load(ctx context.Context) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("store", c.name), slog.String("key", c.key))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.index = make(map[int64]int)

	data, err := c.storage.Read(ctx, c.key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			logger.Debug("No stored collection, starting empty")
		case appErrors.IsStorageUnavailable(err):
			c.degradeLocked(logger, err)
		case isContextErr(err):
			logger.Warn("Collection load interrupted", slog.Any("error", err))
		default:
			logger.Error("Failed to read stored collection", slog.Any("error", err))
		}

		c.observeLocked()

		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Error("Stored collection is malformed, starting empty", slog.Any("error", err))
		c.observeLocked()

		return
	}

	for _, item := range items {
		id := c.idOf(item)
		if _, dup := c.index[id]; dup {
			logger.Warn("Dropping duplicate stored item", slog.Int64("item_id", id))
			continue
		}

		c.index[id] = len(c.items)
		c.items = append(c.items, item)
	}

	c.observeLocked()
	logger.Info("Collection loaded", slog.Int("count", len(c.items)))
}

// Add appends item unless one with the same id is already present, in which
// case the collection is left unchanged and false is returned. The collection
// is persisted either way.
func (c *Collection[T]) Add(ctx context.Context, item T) bool {
	id := c.idOf(item)

	c.mu.Lock()

	_, exists := c.index[id]
	if !exists {
		c.index[id] = len(c.items)
		c.items = append(c.items, item)
	}

	c.persistLocked(ctx)
	c.mu.Unlock()

	kind := EventAdded
	if exists {
		kind = EventDuplicate
	}

	c.publish(Event{Store: c.name, Kind: kind, ItemID: id, ItemName: c.labelOf(item)})

	return !exists
}

// Update applies fn to the item with the given id in place. It reports false
// when the id is absent.
func (c *Collection[T]) Update(ctx context.Context, id int64, fn func(*T)) bool {
	c.mu.Lock()

	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()
		return false
	}

	fn(&c.items[i])
	name := c.labelOf(c.items[i])

	c.persistLocked(ctx)
	c.mu.Unlock()

	c.publish(Event{Store: c.name, Kind: EventUpdated, ItemID: id, ItemName: name})

	return true
}

// Remove deletes the item with the given id and returns it. Removing an absent
// id is a no-op.
func (c *Collection[T]) Remove(ctx context.Context, id int64) (T, bool) {
	var removed T

	c.mu.Lock()

	i, ok := c.index[id]
	if ok {
		removed = c.items[i]
		c.items = slices.Delete(c.items, i, i+1)
		c.reindexLocked()
	}

	c.persistLocked(ctx)
	c.mu.Unlock()

	if ok {
		c.publish(Event{Store: c.name, Kind: EventRemoved, ItemID: id, ItemName: c.labelOf(removed)})
	}

	return removed, ok
}

func (c *Collection[T]) Clear(ctx context.Context) {
	c.mu.Lock()

	c.items = nil
	c.index = make(map[int64]int)

	c.persistLocked(ctx)
	c.mu.Unlock()

	c.publish(Event{Store: c.name, Kind: EventCleared})
}

func (c *Collection[T]) Contains(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.index[id]

	return ok
}

func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}

	return c.items[i], true
}

// Items returns a copy of the collection in insertion order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Degraded reports whether the collection has stopped writing to storage.
func (c *Collection[T]) Degraded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.degraded
}

// Subscribe registers fn for change events and returns a function that
// removes it. fn runs synchronously on the mutating goroutine.
func (c *Collection[T]) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()

		delete(c.subs, id)
	}
}

func (c *Collection[T]) publish(ev Event) {
	c.subMu.Lock()
	subs := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (c *Collection[T]) reindexLocked() {
	clear(c.index)

	for i, item := range c.items {
		c.index[c.idOf(item)] = i
	}
}

func (c *Collection[T]) persistLocked(ctx context.Context) {
	c.observeLocked()

	if c.degraded {
		return
	}

	logger := middleware.LoggerFromContext(ctx).With(slog.String("store", c.name), slog.String("key", c.key))

	items := c.items
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		logger.Error("Failed to encode collection", slog.Any("error", err))
		metrics.StoreWriteFailed(c.name)

		return
	}

	// Writes outlive the request that triggered them.
	if err := c.storage.Write(context.WithoutCancel(ctx), c.key, data); err != nil {
		metrics.StoreWriteFailed(c.name)

		switch {
		case appErrors.IsStorageUnavailable(err):
			c.degradeLocked(logger, err)
		case isContextErr(err):
			logger.Warn("Collection write interrupted", slog.Any("error", err))
		default:
			logger.Error("Failed to persist collection", slog.Any("error", err))
		}
	}
}

func (c *Collection[T]) degradeLocked(logger *slog.Logger, err error) {
	if c.degraded {
		return
	}

	c.degraded = true
	metrics.StoreDegraded(c.name)
	logger.Warn("Storage unavailable, keeping collection in memory only", slog.Any("error", err))
}

func (c *Collection[T]) observeLocked() {
	metrics.StoreItems(c.name, len(c.items))
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
