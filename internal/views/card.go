package views

import (
	"math"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

type Star string

const (
	StarFull  Star = "full"
	StarHalf  Star = "half"
	StarEmpty Star = "empty"
)

const maxStars = 5

// Stars renders a 0-5 rating as five stars. A fractional part of at least
// one half shows as a half star.
func Stars(rating float64) []Star {
	rating = math.Max(0, math.Min(rating, maxStars))
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5

	stars := make([]Star, maxStars)
	for i := range stars {
		switch {
		case i < full:
			stars[i] = StarFull
		case i == full && half:
			stars[i] = StarHalf
		default:
			stars[i] = StarEmpty
		}
	}

	return stars
}

type ProductCard struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	URL               string   `json:"url"`
	Category          string   `json:"category"`
	Brand             string   `json:"brand,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	Price             string   `json:"price"`
	MarketPrice       string   `json:"market_price,omitempty"`
	DiscountPercent   int      `json:"discount_percent,omitempty"`
	DiscountLabel     string   `json:"discount_label,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
	Stars             []Star   `json:"stars,omitempty"`
	InCart            bool     `json:"in_cart"`
	InWatchlist       bool     `json:"in_watchlist"`
	CartAction        string   `json:"cart_action"`
	WatchlistAction   string   `json:"watchlist_action"`
	CartActionEnabled bool     `json:"cart_action_enabled"`
}

// Membership answers whether a product is already collected. Both stores
// satisfy it through small adapters in the services package.
type Membership interface {
	IsInCart(id int64) bool
	IsInWatchlist(id int64) bool
}

func NewProductCard(p *models.Product, m Membership) ProductCard {
	card := ProductCard{
		ID:       p.ID,
		Name:     p.Name,
		URL:      ProductURL(p.ID),
		Category: p.Category,
		Brand:    p.Brand,
		ImageURL: p.ImageURL,
		Rating:   p.Rating,
	}

	if card.Category == "" {
		card.Category = "General"
	}

	if p.SalePrice != nil {
		card.Price = FormatCurrency(p.SalePrice)
	} else {
		card.Price = FormatCurrency(p.MarketPrice)
	}

	if discount := p.DiscountPercent(); discount > 0 {
		card.MarketPrice = FormatCurrency(p.MarketPrice)
		card.DiscountPercent = discount
		card.DiscountLabel = strconv.Itoa(discount) + "% OFF"
	}

	if p.Rating != nil {
		card.Stars = Stars(*p.Rating)
	}

	if m != nil {
		card.InCart = m.IsInCart(p.ID)
		card.InWatchlist = m.IsInWatchlist(p.ID)
	}

	card.CartAction = "Add to Cart"
	card.CartActionEnabled = !card.InCart

	if card.InCart {
		card.CartAction = "In Cart"
	}

	card.WatchlistAction = "Add to Watchlist"
	if card.InWatchlist {
		card.WatchlistAction = "Remove from Watchlist"
	}

	return card
}

func NewProductCards(products []models.Product, m Membership) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for i := range products {
		cards = append(cards, NewProductCard(&products[i], m))
	}

	return cards
}

func ProductURL(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

var descriptionPolicy = bluemonday.UGCPolicy()

type ProductDetail struct {
	ProductCard

	ProductCode    string `json:"product_code,omitempty"`
	SubCategory    string `json:"sub_category,omitempty"`
	Type           string `json:"type,omitempty"`
	Description    string `json:"description"`
	DepartmentID   *int64 `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	DepartmentURL  string `json:"department_url,omitempty"`
}

// NewProductDetail builds the detail page. The description is upstream HTML
// and is reduced to a safe subset.
func NewProductDetail(p *models.Product, m Membership) ProductDetail {
	d := ProductDetail{
		ProductCard:    NewProductCard(p, m),
		ProductCode:    p.ProductID,
		SubCategory:    p.SubCategory,
		Type:           p.Type,
		Description:    descriptionPolicy.Sanitize(p.Description),
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
	}

	if p.DepartmentID != nil {
		d.DepartmentURL = "/departments/" + strconv.FormatInt(*p.DepartmentID, 10)
	}

	return d
}
