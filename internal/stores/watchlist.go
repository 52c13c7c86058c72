package stores

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

const WatchlistStoreName = "watchlist"

type Watchlist struct {
	*Collection[models.WatchlistItem]
	now func() time.Time
}

func NewWatchlist(st storage.Storage, key string) *Watchlist {
	return &Watchlist{
		Collection: NewCollection(WatchlistStoreName, key, st,
			func(i models.WatchlistItem) int64 { return i.ID },
			func(i models.WatchlistItem) string { return i.Name },
		),
		now: time.Now,
	}
}

// Add returns EventAdded for a new entry and EventDuplicate when the product
// is already watched.
func (w *Watchlist) Add(ctx context.Context, product *models.Product) Event {
	ev := Event{Store: w.Name(), ItemID: product.ID, ItemName: product.Name, Kind: EventDuplicate}

	if w.Collection.Add(ctx, models.NewWatchlistItem(product, w.now().UTC())) {
		ev.Kind = EventAdded
	}

	return ev
}

// Remove reports the removed entry's name so callers can confirm it. ok is
// false when nothing was watched under id.
func (w *Watchlist) Remove(ctx context.Context, id int64) (Event, bool) {
	item, ok := w.Collection.Remove(ctx, id)
	if !ok {
		return Event{}, false
	}

	return Event{Store: w.Name(), Kind: EventRemoved, ItemID: id, ItemName: item.Name}, true
}

func (w *Watchlist) IsInWatchlist(id int64) bool {
	return w.Contains(id)
}
