package service_test

import (
	"net/url"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/aaravmahajanofficial/storefront/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newStores(t *testing.T) (*stores.Cart, *stores.Watchlist) {
	t.Helper()

	st := storage.NewMemoryStorage()

	return stores.NewCart(st, "ecommerce_cart"), stores.NewWatchlist(st, "ecommerce_watchlist")
}

func stateFrom(t *testing.T, raw string) filters.State {
	t.Helper()

	q, err := url.ParseQuery(raw)
	require.NoError(t, err)

	return filters.FromQuery(q)
}

func productList(products ...models.Product) *models.ProductList {
	return &models.ProductList{Products: products, Total: len(products), Page: 1, PerPage: 20, TotalPages: 1}
}

func TestListingPage(t *testing.T) {
	t.Run("Success - Builds the page from all sources", func(t *testing.T) {
		// Arrange
		mockCatalog := mocks.NewCatalog(t)
		cart, watchlist := newStores(t)
		svc := service.NewCatalogService(mockCatalog, cart, watchlist)
		ctx := t.Context()

		state := stateFrom(t, "department_id=3&min_rating=0&search=boots")
		cart.Add(ctx, &models.Product{ID: 1, Name: "Boot"})

		mockCatalog.On("ListProducts", mock.Anything, mock.MatchedBy(func(p catalog.Params) bool {
			return p["search"] == "boots" && p["department_id"] == int64(3) && p["min_rating"] == 0.0
		})).Return(productList(models.Product{ID: 1, Name: "Boot"}), nil).Once()
		mockCatalog.On("ListDepartments", mock.Anything, catalog.Params{"per_page": 100}).
			Return(&models.DepartmentList{Departments: []models.Department{{ID: 3, Name: "Footwear"}}}, nil).Once()
		mockCatalog.On("ListCategories", mock.Anything).Return([]string{"Boots"}, nil).Once()
		mockCatalog.On("ListBrands", mock.Anything).Return([]string{"Acme"}, nil).Once()

		// Act
		page, err := svc.ListingPage(ctx, state, true)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, `Search results for "boots"`, page.Title)
		assert.Equal(t, "Showing 1-1 of 1 products", page.ResultsCount)
		require.Len(t, page.Products, 1)
		assert.True(t, page.Products[0].InCart)
		assert.False(t, page.Products[0].InWatchlist)
		assert.Equal(t, []string{"Boots"}, page.Categories)
		assert.Equal(t, []string{"Acme"}, page.Brands)
		assert.Equal(t, views.NavDropdown, page.Departments.Mode)
		assert.Equal(t, "Department: Footwear", page.Chips[1].Label)
	})

	t.Run("Success - Navigation failures leave controls empty", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		svc := service.NewCatalogService(mockCatalog, nil, nil)

		mockCatalog.On("ListProducts", mock.Anything, mock.Anything).Return(productList(), nil).Once()
		mockCatalog.On("ListDepartments", mock.Anything, mock.Anything).Return(nil, appErrors.ServerError("boom")).Once()
		mockCatalog.On("ListCategories", mock.Anything).Return(nil, appErrors.NetworkError("down")).Once()
		mockCatalog.On("ListBrands", mock.Anything).Return(nil, appErrors.NetworkError("down")).Once()

		page, err := svc.ListingPage(t.Context(), filters.Clear(), false)

		require.NoError(t, err)
		assert.Equal(t, "All Products", page.Title)
		assert.Equal(t, "No products found", page.ResultsCount)
		assert.Empty(t, page.Categories)
		assert.Empty(t, page.Departments.Departments)
	})

	t.Run("Failure - Products error fails the page", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		svc := service.NewCatalogService(mockCatalog, nil, nil)

		mockCatalog.On("ListProducts", mock.Anything, mock.Anything).
			Return(nil, appErrors.ValidationError("Invalid parameters").WithDetail("bad sort")).Once()
		mockCatalog.On("ListDepartments", mock.Anything, mock.Anything).Return(&models.DepartmentList{}, nil).Maybe()
		mockCatalog.On("ListCategories", mock.Anything).Return([]string{}, nil).Maybe()
		mockCatalog.On("ListBrands", mock.Anything).Return([]string{}, nil).Maybe()

		page, err := svc.ListingPage(t.Context(), filters.Clear(), false)

		assert.Nil(t, page)
		assert.Equal(t, appErrors.ErrCodeValidation, appErrors.Code(err))
	})
}

func TestProductDetail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		cart, watchlist := newStores(t)
		svc := service.NewCatalogService(mockCatalog, cart, watchlist)

		watchlist.Add(t.Context(), &models.Product{ID: 9, Name: "Kettle"})
		mockCatalog.On("GetProduct", mock.Anything, int64(9)).
			Return(&models.Product{ID: 9, Name: "Kettle", Description: "<p>Steel</p><script>x</script>"}, nil).Once()

		detail, err := svc.ProductDetail(t.Context(), 9)

		require.NoError(t, err)
		assert.Equal(t, "Kettle", detail.Name)
		assert.True(t, detail.InWatchlist)
		assert.Equal(t, "<p>Steel</p>", detail.Description)
	})

	t.Run("Failure - Not found passes through", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		svc := service.NewCatalogService(mockCatalog, nil, nil)

		mockCatalog.On("GetProduct", mock.Anything, int64(404)).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		detail, err := svc.ProductDetail(t.Context(), 404)

		assert.Nil(t, detail)
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestDepartmentPage(t *testing.T) {
	mockCatalog := mocks.NewCatalog(t)
	svc := service.NewCatalogService(mockCatalog, nil, nil)

	state := stateFrom(t, "department_id=99&brand=Acme&page=2")

	mockCatalog.On("DepartmentProducts", mock.Anything, int64(3), mock.MatchedBy(func(p catalog.Params) bool {
		_, hasDepartment := p["department_id"]
		return !hasDepartment && p["brand"] == "Acme" && p["page"] == 2
	})).Return(&models.DepartmentProducts{
		Department: models.Department{ID: 3, Name: "Footwear"},
		Products:   []models.Product{{ID: 1}},
		Total:      21,
		Page:       2,
		PerPage:    20,
		TotalPages: 2,
	}, nil).Once()

	page, err := svc.DepartmentPage(t.Context(), 3, state, false)

	require.NoError(t, err)
	assert.Equal(t, "Footwear", page.Department.Name)
	assert.Equal(t, "Footwear Products", page.Listing.Title)
	assert.Equal(t, "Showing 21-21 of 21 products", page.Listing.ResultsCount)
	require.NotNil(t, page.Listing.State.DepartmentID)
	assert.Equal(t, int64(3), *page.Listing.State.DepartmentID)
}

func TestDepartments(t *testing.T) {
	mockCatalog := mocks.NewCatalog(t)
	svc := service.NewCatalogService(mockCatalog, nil, nil)

	mockCatalog.On("ListDepartments", mock.Anything, catalog.Params{"page": 2, "per_page": 10}).
		Return(&models.DepartmentList{Total: 11, Page: 2}, nil).Once()
	mockCatalog.On("GetDepartment", mock.Anything, int64(5)).
		Return(&models.Department{ID: 5, Name: "Garden"}, nil).Once()

	list, err := svc.ListDepartments(t.Context(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 11, list.Total)

	dept, err := svc.GetDepartment(t.Context(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Garden", dept.Name)
}

func TestStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		svc := service.NewCatalogService(mockCatalog, nil, nil)

		mockCatalog.On("ProductStats", mock.Anything).Return(&models.ProductStats{TotalProducts: 1200}, nil).Once()
		mockCatalog.On("DepartmentStats", mock.Anything).Return(&models.DepartmentStats{TotalDepartments: 4}, nil).Once()

		stats, err := svc.Stats(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 1200, stats.Products.TotalProducts)
		assert.Equal(t, 4, stats.Departments.TotalDepartments)
		assert.Equal(t, "1.2K", stats.Tiles[0].Value)
	})

	t.Run("Failure", func(t *testing.T) {
		mockCatalog := mocks.NewCatalog(t)
		svc := service.NewCatalogService(mockCatalog, nil, nil)

		mockCatalog.On("ProductStats", mock.Anything).Return(nil, appErrors.ServerError("boom")).Once()
		mockCatalog.On("DepartmentStats", mock.Anything).Return(&models.DepartmentStats{}, nil).Maybe()

		stats, err := svc.Stats(t.Context())

		assert.Nil(t, stats)
		assert.True(t, appErrors.Retryable(err))
	})
}

func TestHomePage(t *testing.T) {
	mockCatalog := mocks.NewCatalog(t)
	svc := service.NewCatalogService(mockCatalog, nil, nil)

	mockCatalog.On("ListProducts", mock.Anything, catalog.Params{
		"per_page": 8, "sort_by": "created_at", "sort_order": "desc",
	}).Return(productList(models.Product{ID: 1}, models.Product{ID: 2}), nil).Once()
	mockCatalog.On("ListProducts", mock.Anything, catalog.Params{
		"per_page": 4, "sort_by": "rating", "sort_order": "desc", "min_rating": 4,
	}).Return(productList(models.Product{ID: 3}), nil).Once()
	mockCatalog.On("ListDepartments", mock.Anything, catalog.Params{"per_page": 6}).
		Return(&models.DepartmentList{Departments: []models.Department{{ID: 1, Name: "Footwear"}}}, nil).Once()
	mockCatalog.On("ProductStats", mock.Anything).Return(nil, appErrors.NetworkError("down")).Once()
	mockCatalog.On("DepartmentStats", mock.Anything).Return(&models.DepartmentStats{TotalDepartments: 1}, nil).Once()

	home, err := svc.HomePage(t.Context())

	require.NoError(t, err)
	assert.Len(t, home.Latest, 2)
	assert.Len(t, home.Featured, 1)
	assert.Len(t, home.Departments, 1)
	assert.Equal(t, "0", home.Stats[0].Value)
	assert.Equal(t, "1", home.Stats[1].Value)
}
