package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/views"
)

type WatchlistEntry struct {
	models.WatchlistItem

	Price string `json:"price"`
	URL   string `json:"url"`
}

type WatchlistView struct {
	Items    []WatchlistEntry `json:"items"`
	Count    int              `json:"count"`
	Degraded bool             `json:"degraded,omitempty"`
}

type WatchlistMutation struct {
	Event     stores.Event  `json:"event"`
	Notice    string        `json:"notice"`
	Watchlist WatchlistView `json:"watchlist"`
}

type WatchlistService interface {
	GetWatchlist(ctx context.Context) WatchlistView
	AddItem(ctx context.Context, req *models.AddItemRequest) (*WatchlistMutation, error)
	RemoveItem(ctx context.Context, productID int64) *WatchlistMutation
	Clear(ctx context.Context) *WatchlistMutation
}

type watchlistService struct {
	watchlist *stores.Watchlist
	catalog   Catalog
}

func NewWatchlistService(watchlist *stores.Watchlist, c Catalog) WatchlistService {
	return &watchlistService{watchlist: watchlist, catalog: c}
}

func (s *watchlistService) GetWatchlist(ctx context.Context) WatchlistView {
	items := s.watchlist.Items()

	view := WatchlistView{
		Items:    make([]WatchlistEntry, 0, len(items)),
		Count:    len(items),
		Degraded: s.watchlist.Degraded(),
	}

	for _, item := range items {
		price := item.SalePrice
		if price == nil {
			price = item.MarketPrice
		}

		view.Items = append(view.Items, WatchlistEntry{
			WatchlistItem: item,
			Price:         views.FormatCurrency(price),
			URL:           views.ProductURL(item.ID),
		})
	}

	return view
}

// AddItem never fails on duplicates; the returned event tells the caller
// whether the product was already watched.
func (s *watchlistService) AddItem(ctx context.Context, req *models.AddItemRequest) (*WatchlistMutation, error) {
	var product *models.Product

	// Watched products are not looked up again.
	if item, ok := s.watchlist.Get(req.ProductID); ok {
		product = &models.Product{ID: item.ID, Name: item.Name}
	} else {
		var err error
		if product, err = s.catalog.GetProduct(ctx, req.ProductID); err != nil {
			return nil, err
		}
	}

	ev := s.watchlist.Add(ctx, product)

	notice := "Added " + product.Name + " to watchlist"
	if ev.Kind == stores.EventDuplicate {
		notice = product.Name + " is already in your watchlist"
	}

	middleware.LoggerFromContext(ctx).Info("Watchlist item added",
		"product_id", product.ID,
		"event", ev.Kind,
	)

	return &WatchlistMutation{Event: ev, Notice: notice, Watchlist: s.GetWatchlist(ctx)}, nil
}

func (s *watchlistService) RemoveItem(ctx context.Context, productID int64) *WatchlistMutation {
	m := &WatchlistMutation{Event: stores.Event{Store: s.watchlist.Name(), ItemID: productID}}

	if ev, ok := s.watchlist.Remove(ctx, productID); ok {
		m.Event = ev
		m.Notice = "Removed " + ev.ItemName + " from watchlist"
	}

	m.Watchlist = s.GetWatchlist(ctx)

	return m
}

func (s *watchlistService) Clear(ctx context.Context) *WatchlistMutation {
	s.watchlist.Clear(ctx)

	return &WatchlistMutation{
		Event:     stores.Event{Store: s.watchlist.Name(), Kind: stores.EventCleared},
		Notice:    "Watchlist cleared",
		Watchlist: s.GetWatchlist(ctx),
	}
}
