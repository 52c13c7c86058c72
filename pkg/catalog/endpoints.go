package catalog

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

const (
	TaxonomyTTL = 10 * time.Minute
	StatsTTL    = 5 * time.Minute
)

// ListProducts returns one page of products matching params.
func (c *Client) ListProducts(ctx context.Context, params Params) (*models.ProductList, error) {
	var out models.ProductList

	if err := c.get(ctx, "list_products", "/products", Sanitize(params, c.zeroPolicy), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product

	if err := c.get(ctx, "get_product", idPath("/products", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	return cached(ctx, c, cacheKey("categories", nil), TaxonomyTTL, func() ([]string, error) {
		var out []string
		err := c.get(ctx, "list_categories", "/products/categories/list", nil, &out)

		return out, err
	})
}

func (c *Client) ListBrands(ctx context.Context) ([]string, error) {
	return cached(ctx, c, cacheKey("brands", nil), TaxonomyTTL, func() ([]string, error) {
		var out []string
		err := c.get(ctx, "list_brands", "/products/brands/list", nil, &out)

		return out, err
	})
}

func (c *Client) ProductStats(ctx context.Context) (*models.ProductStats, error) {
	return cached(ctx, c, cacheKey("product_stats", nil), StatsTTL, func() (*models.ProductStats, error) {
		var out models.ProductStats
		if err := c.get(ctx, "product_stats", "/products/stats/summary", nil, &out); err != nil {
			return nil, err
		}

		return &out, nil
	})
}

func (c *Client) ListDepartments(ctx context.Context, params Params) (*models.DepartmentList, error) {
	q := Sanitize(params, c.zeroPolicy)

	return cached(ctx, c, cacheKey("departments", q), StatsTTL, func() (*models.DepartmentList, error) {
		var out models.DepartmentList
		if err := c.get(ctx, "list_departments", "/departments", q, &out); err != nil {
			return nil, err
		}

		return &out, nil
	})
}

func (c *Client) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	var out models.Department

	if err := c.get(ctx, "get_department", idPath("/departments", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DepartmentProducts(ctx context.Context, id int64, params Params) (*models.DepartmentProducts, error) {
	var out models.DepartmentProducts

	if err := c.get(ctx, "department_products", idPath("/departments", id)+"/products", Sanitize(params, c.zeroPolicy), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DepartmentStats(ctx context.Context) (*models.DepartmentStats, error) {
	return cached(ctx, c, cacheKey("department_stats", nil), StatsTTL, func() (*models.DepartmentStats, error) {
		var out models.DepartmentStats
		if err := c.get(ctx, "department_stats", "/departments/stats/summary", nil, &out); err != nil {
			return nil, err
		}

		return &out, nil
	})
}

// Ping checks that the catalog API answers at all.
func (c *Client) Ping(ctx context.Context) error {
	var out models.DepartmentStats

	return c.get(ctx, "ping", "/departments/stats/summary", nil, &out)
}
