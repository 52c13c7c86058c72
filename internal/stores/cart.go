package stores

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/shopspring/decimal"
)

const CartStoreName = "cart"

// Cart accumulates quantity: adding a product that is already present bumps
// its quantity instead of rejecting it.
type Cart struct {
	*Collection[models.CartItem]
	now func() time.Time
}

func NewCart(st storage.Storage, key string) *Cart {
	return &Cart{
		Collection: NewCollection(CartStoreName, key, st,
			func(i models.CartItem) int64 { return i.ID },
			func(i models.CartItem) string { return i.Name },
		),
		now: time.Now,
	}
}

// Add puts one unit of product in the cart and reports whether a new line was
// created (EventAdded) or an existing one incremented (EventUpdated).
func (c *Cart) Add(ctx context.Context, product *models.Product) EventKind {
	if c.Update(ctx, product.ID, func(item *models.CartItem) { item.Quantity++ }) {
		return EventUpdated
	}

	if c.Collection.Add(ctx, models.NewCartItem(product, c.now().UTC())) {
		return EventAdded
	}

	// Lost a race with a concurrent add of the same product.
	c.Update(ctx, product.ID, func(item *models.CartItem) { item.Quantity++ })

	return EventUpdated
}

// SetQuantity replaces the stored quantity; qty below 1 removes the line.
func (c *Cart) SetQuantity(ctx context.Context, id int64, qty int) bool {
	if qty < 1 {
		_, ok := c.Remove(ctx, id)
		return ok
	}

	return c.Update(ctx, id, func(item *models.CartItem) { item.Quantity = qty })
}

// ItemCount is the total number of units, as opposed to Count which is the
// number of distinct products.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items() {
		total += item.Quantity
	}

	return total
}

func (c *Cart) IsInCart(id int64) bool {
	return c.Contains(id)
}

// Subtotal sums sale price times quantity. Items without a sale price fall
// back to the market price, and count as zero when neither is known.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero

	for _, item := range c.Items() {
		unit := item.SalePrice
		if unit == nil {
			unit = item.MarketPrice
		}

		if unit == nil {
			continue
		}

		total = total.Add(decimal.NewFromFloat(*unit).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2)
}

// Savings is the sum over discounted items of (market - sale) times quantity.
func (c *Cart) Savings() decimal.Decimal {
	total := decimal.Zero

	for _, item := range c.Items() {
		if item.SalePrice == nil || item.MarketPrice == nil || *item.SalePrice >= *item.MarketPrice {
			continue
		}

		diff := decimal.NewFromFloat(*item.MarketPrice).Sub(decimal.NewFromFloat(*item.SalePrice))
		total = total.Add(diff.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2)
}
