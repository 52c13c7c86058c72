package models

import (
	"math"
	"time"
)

type Department struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	ProductCount int        `json:"product_count"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Product struct {
	ID                 int64      `json:"id"`
	ProductID          string     `json:"product_id"`
	Name               string     `json:"product_name"`
	Category           string     `json:"category,omitempty"`
	SubCategory        string     `json:"sub_category,omitempty"`
	Brand              string     `json:"brand,omitempty"`
	Type               string     `json:"type,omitempty"`
	SalePrice          *float64   `json:"sale_price,omitempty"`
	MarketPrice        *float64   `json:"market_price,omitempty"`
	Rating             *float64   `json:"rating,omitempty"`
	Description        string     `json:"description,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	DepartmentID       *int64     `json:"department_id,omitempty"`
	DepartmentName     string     `json:"department_name,omitempty"`
	DiscountPercentage float64    `json:"discount_percentage"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// DiscountPercent derives the discount from the two prices. The server's
// discount_percentage is informational only.
func (p *Product) DiscountPercent() int {
	return DiscountPercent(p.MarketPrice, p.SalePrice)
}

func (p *Product) OnSale() bool {
	return p.DiscountPercent() > 0
}

func DiscountPercent(marketPrice, salePrice *float64) int {
	if marketPrice == nil || salePrice == nil || *marketPrice == 0 || *salePrice == 0 {
		return 0
	}

	if *salePrice >= *marketPrice {
		return 0
	}

	return int(math.Round((*marketPrice - *salePrice) / *marketPrice * 100))
}

type ProductList struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PriceBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type ProductStats struct {
	TotalProducts           int           `json:"total_products"`
	TotalDepartments        int           `json:"total_departments"`
	ProductsWithPrices      int           `json:"products_with_prices"`
	ProductsWithRatings     int           `json:"products_with_ratings"`
	ProductsWithDepartments int           `json:"products_with_departments"`
	ProductsOnSale          int           `json:"products_on_sale"`
	AveragePrice            float64       `json:"average_price"`
	PriceRange              ValueRange    `json:"price_range"`
	AverageRating           float64       `json:"average_rating"`
	RatingRange             ValueRange    `json:"rating_range"`
	RatedProducts           int           `json:"rated_products"`
	TopCategories           []NamedCount  `json:"top_categories"`
	TopBrands               []NamedCount  `json:"top_brands"`
	PriceDistribution       []PriceBucket `json:"price_distribution"`
}

type DepartmentList struct {
	Departments []Department `json:"departments"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	PerPage     int          `json:"per_page"`
	TotalPages  int          `json:"total_pages"`
}

type DepartmentProducts struct {
	Department Department `json:"department"`
	Products   []Product  `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
}

type DepartmentBreakdown struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

type DepartmentStats struct {
	TotalDepartments             int                   `json:"total_departments"`
	AverageProductsPerDepartment float64               `json:"average_products_per_department"`
	DepartmentBreakdown          []DepartmentBreakdown `json:"department_breakdown"`
}
