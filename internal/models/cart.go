package models

import "time"

// CartItem snapshots a product's display fields at add time.
type CartItem struct {
	ID          int64     `json:"id"`
	ProductID   string    `json:"product_id"`
	Name        string    `json:"product_name"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
	MarketPrice *float64  `json:"market_price,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

type WatchlistItem struct {
	ID          int64     `json:"id"`
	ProductID   string    `json:"product_id"`
	Name        string    `json:"product_name"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
	MarketPrice *float64  `json:"market_price,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

func NewCartItem(p *Product, now time.Time) CartItem {
	return CartItem{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		SalePrice:   p.SalePrice,
		MarketPrice: p.MarketPrice,
		Rating:      p.Rating,
		ImageURL:    p.ImageURL,
		Quantity:    1,
		AddedAt:     now,
	}
}

func NewWatchlistItem(p *Product, now time.Time) WatchlistItem {
	return WatchlistItem{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		SalePrice:   p.SalePrice,
		MarketPrice: p.MarketPrice,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Brand:       p.Brand,
		Rating:      p.Rating,
		AddedAt:     now,
	}
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
