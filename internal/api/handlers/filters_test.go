package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeFilters(t *testing.T, rr *httptest.ResponseRecorder) handlers.FilterResult {
	t.Helper()

	_, data := decode(t, rr)

	var result handlers.FilterResult
	require.NoError(t, json.Unmarshal(data, &result))

	return result
}

func TestFilterHandler(t *testing.T) {
	filterHandler := handlers.NewFilterHandler(mocks.NewCatalogService(t))

	t.Run("Get normalizes malformed values", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/filters?min_price=abc&page=0&per_page=999&category=Shoes", nil)

		filterHandler.GetFilters().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		result := decodeFilters(t, rr)
		assert.Nil(t, result.State.MinPrice)
		assert.Equal(t, 1, result.State.Page)
		assert.Equal(t, 100, result.State.PerPage)
		assert.True(t, result.HasActive)
		require.Len(t, result.Chips, 1)
		assert.Equal(t, "category", result.Chips[0].Key)
	})

	t.Run("Patch resets paging", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		body := []byte(`{"patch": {"brand": "Acme"}}`)
		req := newTestRequest(http.MethodPatch, "/api/v1/filters?category=Shoes&page=3", body)

		// Act
		filterHandler.UpdateFilters().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		result := decodeFilters(t, rr)
		assert.Equal(t, "Shoes", result.State.Category)
		assert.Equal(t, "Acme", result.State.Brand)
		assert.Equal(t, 1, result.State.Page)
		assert.Contains(t, result.Query, "brand=Acme")
		assert.NotContains(t, result.Query, "page=")
	})

	t.Run("Patch keeps an explicit page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/filters?category=Shoes", []byte(`{"patch": {"page": "4"}}`))

		filterHandler.UpdateFilters().ServeHTTP(rr, req)

		result := decodeFilters(t, rr)
		assert.Equal(t, 4, result.State.Page)
	})

	t.Run("Patch without body fields fails validation", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/filters", []byte(`{}`))

		filterHandler.UpdateFilters().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp, _ := decode(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("Patch with malformed body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/filters", []byte(`{"patch": `))

		filterHandler.UpdateFilters().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Remove drops a single chip", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodDelete, "/api/v1/filters/brand?brand=Acme&category=Shoes&page=2", nil)
		req.SetPathValue("key", "brand")

		filterHandler.RemoveFilter().ServeHTTP(rr, req)

		result := decodeFilters(t, rr)
		assert.Empty(t, result.State.Brand)
		assert.Equal(t, "Shoes", result.State.Category)
		assert.Equal(t, 1, result.State.Page)
	})

	t.Run("Clear restores defaults", func(t *testing.T) {
		rr := httptest.NewRecorder()

		filterHandler.ClearFilters().ServeHTTP(rr, newTestRequest(http.MethodDelete, "/api/v1/filters", nil))

		result := decodeFilters(t, rr)
		assert.False(t, result.HasActive)
		assert.Empty(t, result.Chips)
		assert.Equal(t, "created_at", result.State.SortBy)
	})

	t.Run("Department chip shows the department name", func(t *testing.T) {
		// Arrange
		mockService := mocks.NewCatalogService(t)
		mockService.On("GetDepartment", mock.Anything, int64(7)).
			Return(&models.Department{ID: 7, Name: "Footwear"}, nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/filters?department_id=7", nil)

		// Act
		handlers.NewFilterHandler(mockService).GetFilters().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		result := decodeFilters(t, rr)
		require.Len(t, result.Chips, 1)
		assert.Equal(t, "department_id", result.Chips[0].Key)
		assert.Equal(t, "Department: Footwear", result.Chips[0].Label)
		assert.Equal(t, "7", result.Chips[0].Value)
	})

	t.Run("Department lookup failure falls back to the id", func(t *testing.T) {
		mockService := mocks.NewCatalogService(t)
		mockService.On("GetDepartment", mock.Anything, int64(7)).
			Return(nil, appErrors.NetworkError("down")).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/filters?department_id=7", nil)

		handlers.NewFilterHandler(mockService).GetFilters().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		result := decodeFilters(t, rr)
		require.Len(t, result.Chips, 1)
		assert.Equal(t, "Department: 7", result.Chips[0].Label)
	})
}
