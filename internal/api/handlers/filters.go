package handlers

import (
	"context"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// FilterResult is a normalized filter state with its address-bar form.
type FilterResult struct {
	State     filters.State  `json:"state"`
	Query     string         `json:"query"`
	Chips     []filters.Chip `json:"chips"`
	HasActive bool           `json:"has_active"`
}

type FilterHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewFilterHandler(catalogService service.CatalogService) *FilterHandler {
	return &FilterHandler{catalogService: catalogService, validator: validator.New()}
}

// result resolves the department chip to its name. If the lookup fails the
// chip shows the raw id.
func (h *FilterHandler) result(ctx context.Context, s filters.State) FilterResult {
	var departments []models.Department

	if s.DepartmentID != nil {
		d, err := h.catalogService.GetDepartment(ctx, *s.DepartmentID)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to resolve department for filter chip",
				"department_id", *s.DepartmentID, "error", err)
		} else {
			departments = []models.Department{*d}
		}
	}

	return FilterResult{
		State:     s,
		Query:     s.Encode(),
		Chips:     filters.ActiveFilters(s, departments),
		HasActive: filters.HasActive(s),
	}
}

// for eg: GET /api/v1/filters?min_price=abc&page=0 normalizes to the defaults
func (h *FilterHandler) GetFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.result(r.Context(), filters.FromQuery(r.URL.Query())))
	}
}

// for eg: PATCH /api/v1/filters?category=Shoes&page=3 {"patch": {"brand": "Acme"}}
func (h *FilterHandler) UpdateFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FilterPatchRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		current := filters.FromQuery(r.URL.Query())

		response.Success(w, http.StatusOK, h.result(r.Context(), filters.Update(current, req.Patch)))
	}
}

// for eg: DELETE /api/v1/filters/brand?brand=Acme&category=Shoes
func (h *FilterHandler) RemoveFilter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := filters.FromQuery(r.URL.Query())

		response.Success(w, http.StatusOK, h.result(r.Context(), filters.RemoveChip(current, r.PathValue("key"))))
	}
}

func (h *FilterHandler) ClearFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.result(r.Context(), filters.Clear()))
	}
}
