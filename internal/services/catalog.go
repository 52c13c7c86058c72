package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/aaravmahajanofficial/storefront/pkg/catalog"
	"golang.org/x/sync/errgroup"
)

// Catalog is the read-only product API the services depend on.
type Catalog interface {
	ListProducts(ctx context.Context, params catalog.Params) (*models.ProductList, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListBrands(ctx context.Context) ([]string, error)
	ProductStats(ctx context.Context) (*models.ProductStats, error)
	ListDepartments(ctx context.Context, params catalog.Params) (*models.DepartmentList, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	DepartmentProducts(ctx context.Context, id int64, params catalog.Params) (*models.DepartmentProducts, error)
	DepartmentStats(ctx context.Context) (*models.DepartmentStats, error)
}

// Department lists in navigation are fetched in one page of this size.
const navDepartmentsPerPage = 100

type CatalogService interface {
	ListingPage(ctx context.Context, state filters.State, compact bool) (*views.ListingPage, error)
	ProductDetail(ctx context.Context, id int64) (*views.ProductDetail, error)
	ListDepartments(ctx context.Context, page, perPage int) (*models.DepartmentList, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	DepartmentPage(ctx context.Context, id int64, state filters.State, compact bool) (*DepartmentPage, error)
	Stats(ctx context.Context) (*Stats, error)
	HomePage(ctx context.Context) (*views.HomePage, error)
}

type DepartmentPage struct {
	Department models.Department `json:"department"`
	Listing    views.ListingPage `json:"listing"`
}

type Stats struct {
	Products    *models.ProductStats    `json:"products"`
	Departments *models.DepartmentStats `json:"departments"`
	Tiles       []views.StatTile        `json:"tiles"`
}

type catalogService struct {
	catalog    Catalog
	membership views.Membership
}

func NewCatalogService(c Catalog, cart *stores.Cart, watchlist *stores.Watchlist) CatalogService {
	return &catalogService{
		catalog:    c,
		membership: membership{cart: cart, watchlist: watchlist},
	}
}

// membership marks cards that are already in the shopper's collections.
type membership struct {
	cart      *stores.Cart
	watchlist *stores.Watchlist
}

func (m membership) IsInCart(id int64) bool {
	return m.cart != nil && m.cart.IsInCart(id)
}

func (m membership) IsInWatchlist(id int64) bool {
	return m.watchlist != nil && m.watchlist.IsInWatchlist(id)
}

// ListingPage loads products together with the navigation data. Only a
// failure to load products fails the page; missing departments, categories
// or brands leave the corresponding controls empty.
func (s *catalogService) ListingPage(ctx context.Context, state filters.State, compact bool) (*views.ListingPage, error) {
	logger := middleware.LoggerFromContext(ctx)

	var (
		products    *models.ProductList
		departments []models.Department
		categories  []string
		brands      []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, err = s.catalog.ListProducts(gctx, state.Params())

		return err
	})

	g.Go(func() error {
		list, err := s.catalog.ListDepartments(gctx, catalog.Params{"per_page": navDepartmentsPerPage})
		if err != nil {
			logger.Warn("Failed to load departments for navigation", "error", err)
			return nil
		}

		departments = list.Departments

		return nil
	})

	g.Go(func() error {
		var err error
		if categories, err = s.catalog.ListCategories(gctx); err != nil {
			logger.Warn("Failed to load categories", "error", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if brands, err = s.catalog.ListBrands(gctx); err != nil {
			logger.Warn("Failed to load brands", "error", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := views.NewListingPage(views.ListingInput{
		State:       state,
		Products:    products,
		Departments: departments,
		Categories:  categories,
		Brands:      brands,
		Membership:  s.membership,
		Compact:     compact,
	})

	return &page, nil
}

func (s *catalogService) ProductDetail(ctx context.Context, id int64) (*views.ProductDetail, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := views.NewProductDetail(product, s.membership)

	return &detail, nil
}

func (s *catalogService) ListDepartments(ctx context.Context, page, perPage int) (*models.DepartmentList, error) {
	return s.catalog.ListDepartments(ctx, catalog.Params{"page": page, "per_page": perPage})
}

func (s *catalogService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.catalog.GetDepartment(ctx, id)
}

// DepartmentPage lists one department's products. The department comes from
// the path, so any department filter in state is replaced.
func (s *catalogService) DepartmentPage(ctx context.Context, id int64, state filters.State, compact bool) (*DepartmentPage, error) {
	result, err := s.catalog.DepartmentProducts(ctx, id, state.WithoutDepartment())
	if err != nil {
		return nil, err
	}

	state.DepartmentID = &result.Department.ID

	listing := views.NewListingPage(views.ListingInput{
		State: state,
		Products: &models.ProductList{
			Products:   result.Products,
			Total:      result.Total,
			Page:       result.Page,
			PerPage:    result.PerPage,
			TotalPages: result.TotalPages,
		},
		Departments: []models.Department{result.Department},
		Membership:  s.membership,
		Compact:     compact,
	})

	return &DepartmentPage{Department: result.Department, Listing: listing}, nil
}

func (s *catalogService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.Products, err = s.catalog.ProductStats(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		stats.Departments, err = s.catalog.DepartmentStats(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Tiles = views.StatTiles(stats.Products, stats.Departments)

	return &stats, nil
}

// HomePage needs the product sections. Stats and departments are decoration
// and load best effort.
func (s *catalogService) HomePage(ctx context.Context) (*views.HomePage, error) {
	logger := middleware.LoggerFromContext(ctx)

	var in views.HomeInput
	in.Membership = s.membership

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.catalog.ListProducts(gctx, catalog.Params{
			"per_page": 8, "sort_by": "created_at", "sort_order": "desc",
		})
		if err != nil {
			return err
		}

		in.Latest = list.Products

		return nil
	})

	g.Go(func() error {
		list, err := s.catalog.ListProducts(gctx, catalog.Params{
			"per_page": 4, "sort_by": "rating", "sort_order": "desc", "min_rating": 4,
		})
		if err != nil {
			return err
		}

		in.Featured = list.Products

		return nil
	})

	g.Go(func() error {
		list, err := s.catalog.ListDepartments(gctx, catalog.Params{"per_page": 6})
		if err != nil {
			logger.Warn("Failed to load departments for home page", "error", err)
			return nil
		}

		in.Departments = list.Departments

		return nil
	})

	g.Go(func() error {
		var err error
		if in.ProductStats, err = s.catalog.ProductStats(gctx); err != nil {
			logger.Warn("Failed to load product stats", "error", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if in.DepartmentStats, err = s.catalog.DepartmentStats(gctx); err != nil {
			logger.Warn("Failed to load department stats", "error", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	home := views.NewHomePage(in)

	return &home, nil
}
