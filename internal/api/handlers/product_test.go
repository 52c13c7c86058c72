package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRequest(method, target string, body []byte) *http.Request {
	return testutils.CreateTestRequest(method, target, bytes.NewReader(body), nil)
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) (response.APIResponse, json.RawMessage) {
	t.Helper()

	resp, data, err := testutils.DecodeResponse(rr)
	require.NoError(t, err)

	return resp, data
}

func TestListProducts(t *testing.T) {
	layout := views.NewLayout(1024)

	t.Run("Success - Parses filters and viewport", func(t *testing.T) {
		// Arrange
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		req := newTestRequest(http.MethodGet, "/api/v1/products?category=Shoes&min_price=abc&per_page=40", nil)
		req.Header.Set("Sec-CH-Viewport-Width", "800")
		rr := httptest.NewRecorder()

		mockService.On("ListingPage", mock.Anything, mock.MatchedBy(func(s filters.State) bool {
			return s.Category == "Shoes" && s.MinPrice == nil && s.PerPage == 40
		}), true).Return(&views.ListingPage{Title: "Shoes Products", Query: "category=Shoes"}, nil).Once()

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		resp, data := decode(t, rr)
		assert.True(t, resp.Success)

		var page views.ListingPage
		require.NoError(t, json.Unmarshal(data, &page))
		assert.Equal(t, "Shoes Products", page.Title)
	})

	t.Run("Failure - Validation shows the upstream detail", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)
		rr := httptest.NewRecorder()

		upstream := appErrors.ValidationError("Invalid parameters").WithDetail("sort_by is not sortable")
		mockService.On("ListingPage", mock.Anything, mock.Anything, false).Return(nil, upstream).Once()

		productHandler.ListProducts().ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v1/products?sort_by=bogus", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp, data := decode(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, []string{"sort_by is not sortable"}, resp.Error.Details)

		var view views.ErrorView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, "sort_by is not sortable", view.Message)
		assert.False(t, view.Retryable)
	})

	t.Run("Failure - Network errors are retryable", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)
		rr := httptest.NewRecorder()

		mockService.On("ListingPage", mock.Anything, mock.Anything, false).Return(nil, appErrors.NetworkError("dial failed")).Once()

		productHandler.ListProducts().ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v1/products", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)

		resp, data := decode(t, rr)
		assert.True(t, resp.Error.Retryable)

		var view views.ErrorView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, views.ErrorKindNetwork, view.Kind)
		assert.True(t, view.Retryable)
	})

	t.Run("Superseded request answers conflict", func(t *testing.T) {
		// Arrange
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		started := make(chan struct{})

		mockService.On("ListingPage", mock.Anything, mock.MatchedBy(func(s filters.State) bool {
			return s.Page == 1
		}), false).Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).Return(nil, context.Canceled).Once()

		mockService.On("ListingPage", mock.Anything, mock.MatchedBy(func(s filters.State) bool {
			return s.Page == 2
		}), false).Return(&views.ListingPage{Title: "All Products"}, nil).Once()

		oldReq := newTestRequest(http.MethodGet, "/api/v1/products", nil)
		oldReq.Header.Set("X-Client-ID", "tab-1")
		oldRR := httptest.NewRecorder()

		var wg sync.WaitGroup
		wg.Add(1)

		go func() {
			defer wg.Done()
			productHandler.ListProducts().ServeHTTP(oldRR, oldReq)
		}()

		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("first request never reached the service")
		}

		newReq := newTestRequest(http.MethodGet, "/api/v1/products?page=2", nil)
		newReq.Header.Set("X-Client-ID", "tab-1")
		newRR := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(newRR, newReq)
		wg.Wait()

		// Assert
		assert.Equal(t, http.StatusOK, newRR.Code)
		assert.Equal(t, http.StatusConflict, oldRR.Code)

		resp, _ := decode(t, oldRR)
		assert.Equal(t, handlers.ErrCodeSuperseded, resp.Error.Code)
	})

	t.Run("Different clients do not supersede each other", func(t *testing.T) {
		// Arrange
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		started := make(chan struct{})
		otherDone := make(chan struct{})

		mockService.On("ListingPage", mock.Anything, mock.MatchedBy(func(s filters.State) bool {
			return s.Page == 1
		}), false).Run(func(args mock.Arguments) {
			close(started)
			<-otherDone
		}).Return(&views.ListingPage{Title: "All Products"}, nil).Once()

		mockService.On("ListingPage", mock.Anything, mock.MatchedBy(func(s filters.State) bool {
			return s.Page == 2
		}), false).Return(&views.ListingPage{Title: "All Products"}, nil).Once()

		firstReq := newTestRequest(http.MethodGet, "/api/v1/products", nil)
		firstReq.Header.Set("X-Client-ID", "tab-1")
		firstRR := httptest.NewRecorder()

		var wg sync.WaitGroup
		wg.Add(1)

		go func() {
			defer wg.Done()
			productHandler.ListProducts().ServeHTTP(firstRR, firstReq)
		}()

		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("first request never reached the service")
		}

		secondReq := newTestRequest(http.MethodGet, "/api/v1/products?page=2", nil)
		secondReq.Header.Set("X-Client-ID", "tab-2")
		secondRR := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(secondRR, secondReq)
		close(otherDone)
		wg.Wait()

		// Assert
		assert.Equal(t, http.StatusOK, secondRR.Code)
		assert.Equal(t, http.StatusOK, firstRR.Code)
	})
}

func TestGetProduct(t *testing.T) {
	layout := views.NewLayout(0)

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		req := newTestRequest(http.MethodGet, "/api/v1/products/7", nil)
		req.SetPathValue("id", "7")
		rr := httptest.NewRecorder()

		detail := &views.ProductDetail{ProductCard: views.ProductCard{ID: 7, Name: "Kettle"}}
		mockService.On("ProductDetail", mock.Anything, int64(7)).Return(detail, nil).Once()

		productHandler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		_, data := decode(t, rr)
		var got views.ProductDetail
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Kettle", got.Name)
	})

	t.Run("Failure - Not found renders the not found view", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		req := newTestRequest(http.MethodGet, "/api/v1/products/404", nil)
		req.SetPathValue("id", "404")
		rr := httptest.NewRecorder()

		mockService.On("ProductDetail", mock.Anything, int64(404)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		productHandler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		_, data := decode(t, rr)
		var view views.ErrorView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, views.ErrorKindNotFound, view.Kind)
		assert.Equal(t, "Product not found", view.Title)
	})

	t.Run("Failure - Invalid id", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		productHandler := handlers.NewProductHandler(mockService, layout)

		for _, id := range []string{"abc", "0", "-3"} {
			req := newTestRequest(http.MethodGet, "/api/v1/products/"+id, nil)
			req.SetPathValue("id", id)
			rr := httptest.NewRecorder()

			productHandler.GetProduct().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, id)
		}
	})
}

func TestHomeAndStats(t *testing.T) {
	mockService := mocks.NewCatalogService(t)
	productHandler := handlers.NewProductHandler(mockService, views.NewLayout(0))

	mockService.On("HomePage", mock.Anything).Return(&views.HomePage{Stats: views.StatTiles(nil, nil)}, nil).Once()
	mockService.On("Stats", mock.Anything).Return(nil, appErrors.ServerError("boom")).Once()

	rr := httptest.NewRecorder()
	productHandler.Home().ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v1/home", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	productHandler.Stats().ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v1/stats", nil))
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	resp, _ := decode(t, rr)
	assert.Equal(t, appErrors.ErrCodeServer, resp.Error.Code)
}

func TestDepartmentHandler(t *testing.T) {
	t.Run("List clamps paging", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		departmentHandler := handlers.NewDepartmentHandler(mockService, views.NewLayout(0))

		mockService.On("ListDepartments", mock.Anything, 1, 100).Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		departmentHandler.ListDepartments().ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v1/departments?page=0&per_page=500", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Products of a missing department", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		departmentHandler := handlers.NewDepartmentHandler(mockService, views.NewLayout(0))

		req := newTestRequest(http.MethodGet, "/api/v1/departments/9/products", nil)
		req.SetPathValue("id", "9")
		rr := httptest.NewRecorder()

		mockService.On("DepartmentPage", mock.Anything, int64(9), mock.Anything, false).
			Return(nil, appErrors.NotFoundError("Department not found")).Once()

		departmentHandler.DepartmentProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		_, data := decode(t, rr)
		var view views.ErrorView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, "Department not found", view.Title)
	})

	t.Run("Products of a department", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		departmentHandler := handlers.NewDepartmentHandler(mockService, views.NewLayout(0))

		req := newTestRequest(http.MethodGet, "/api/v1/departments/3/products?department_id=8&brand=Acme", nil)
		req.SetPathValue("id", "3")
		req.Header.Set("Viewport-Width", "1440")
		rr := httptest.NewRecorder()

		page := &service.DepartmentPage{Listing: views.ListingPage{Title: "Kitchen Products"}}
		mockService.On("DepartmentPage", mock.Anything, int64(3), mock.MatchedBy(func(s filters.State) bool {
			return s.Brand == "Acme"
		}), false).Return(page, nil).Once()

		departmentHandler.DepartmentProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		_, data := decode(t, rr)
		var got service.DepartmentPage
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Kitchen Products", got.Listing.Title)
	})

	t.Run("Department lookup fails upstream", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		departmentHandler := handlers.NewDepartmentHandler(mockService, views.NewLayout(0))

		req := newTestRequest(http.MethodGet, "/api/v1/departments/3", nil)
		req.SetPathValue("id", "3")
		rr := httptest.NewRecorder()

		mockService.On("GetDepartment", mock.Anything, int64(3)).Return(nil, appErrors.NetworkError("down")).Once()

		departmentHandler.GetDepartment().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
