package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	models.CartItem

	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
	URL       string `json:"url"`
}

type CartView struct {
	Items     []CartLine `json:"items"`
	Count     int        `json:"count"`
	ItemCount int        `json:"item_count"`
	Subtotal  string     `json:"subtotal"`
	Savings   string     `json:"savings,omitempty"`
	Degraded  bool       `json:"degraded,omitempty"`
}

// CartMutation is the cart after a change plus a confirmation for the
// shopper.
type CartMutation struct {
	Event  stores.Event `json:"event"`
	Notice string       `json:"notice"`
	Cart   CartView     `json:"cart"`
}

type CartService interface {
	GetCart(ctx context.Context) CartView
	AddItem(ctx context.Context, req *models.AddItemRequest) (*CartMutation, error)
	UpdateQuantity(ctx context.Context, productID int64, req *models.UpdateQuantityRequest) (*CartMutation, error)
	RemoveItem(ctx context.Context, productID int64) *CartMutation
	Clear(ctx context.Context) *CartMutation
}

type cartService struct {
	cart    *stores.Cart
	catalog Catalog
}

func NewCartService(cart *stores.Cart, c Catalog) CartService {
	return &cartService{cart: cart, catalog: c}
}

func (s *cartService) GetCart(ctx context.Context) CartView {
	items := s.cart.Items()

	view := CartView{
		Items:     make([]CartLine, 0, len(items)),
		Count:     len(items),
		ItemCount: s.cart.ItemCount(),
		Subtotal:  views.FormatMoney(s.cart.Subtotal()),
		Degraded:  s.cart.Degraded(),
	}

	if savings := s.cart.Savings(); savings.IsPositive() {
		view.Savings = views.FormatMoney(savings)
	}

	for _, item := range items {
		unit := item.SalePrice
		if unit == nil {
			unit = item.MarketPrice
		}

		line := CartLine{
			CartItem:  item,
			Price:     views.FormatCurrency(unit),
			LineTotal: views.FormatMoney(decimal.Zero),
			URL:       views.ProductURL(item.ID),
		}

		if unit != nil {
			line.LineTotal = views.FormatMoney(decimal.NewFromFloat(*unit).Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		view.Items = append(view.Items, line)
	}

	return view
}

// AddItem resolves the product upstream so the cart line carries current
// display fields.
func (s *cartService) AddItem(ctx context.Context, req *models.AddItemRequest) (*CartMutation, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	kind := s.cart.Add(ctx, product)

	notice := "Added " + product.Name + " to cart"
	if kind == stores.EventUpdated {
		notice = "Increased " + product.Name + " quantity in cart"
	}

	middleware.LoggerFromContext(ctx).Info("Cart item added",
		"product_id", product.ID,
		"event", kind,
	)

	return &CartMutation{
		Event:  stores.Event{Store: s.cart.Name(), Kind: kind, ItemID: product.ID, ItemName: product.Name},
		Notice: notice,
		Cart:   s.GetCart(ctx),
	}, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, req *models.UpdateQuantityRequest) (*CartMutation, error) {
	item, ok := s.cart.Get(productID)
	if !ok {
		return nil, errors.NotFoundError("Item not found in the cart")
	}

	s.cart.SetQuantity(ctx, productID, *req.Quantity)

	ev := stores.Event{Store: s.cart.Name(), Kind: stores.EventUpdated, ItemID: productID, ItemName: item.Name}
	notice := "Updated " + item.Name + " quantity"

	if *req.Quantity < 1 {
		ev.Kind = stores.EventRemoved
		notice = "Removed " + item.Name + " from cart"
	}

	return &CartMutation{Event: ev, Notice: notice, Cart: s.GetCart(ctx)}, nil
}

// RemoveItem is a no-op for products that are not in the cart.
func (s *cartService) RemoveItem(ctx context.Context, productID int64) *CartMutation {
	m := &CartMutation{Event: stores.Event{Store: s.cart.Name(), ItemID: productID}}

	if item, ok := s.cart.Remove(ctx, productID); ok {
		m.Event.Kind = stores.EventRemoved
		m.Event.ItemName = item.Name
		m.Notice = "Removed " + item.Name + " from cart"
	}

	m.Cart = s.GetCart(ctx)

	return m
}

func (s *cartService) Clear(ctx context.Context) *CartMutation {
	s.cart.Clear(ctx)

	return &CartMutation{
		Event:  stores.Event{Store: s.cart.Name(), Kind: stores.EventCleared},
		Notice: "Cart cleared",
		Cart:   s.GetCart(ctx),
	}
}
