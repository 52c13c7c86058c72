package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/aaravmahajanofficial/storefront/internal/views"
)

type DepartmentHandler struct {
	catalogService service.CatalogService
	layout         *views.Layout
}

func NewDepartmentHandler(catalogService service.CatalogService, layout *views.Layout) *DepartmentHandler {
	return &DepartmentHandler{catalogService: catalogService, layout: layout}
}

// for eg: GET /api/v1/departments?page=1&per_page=20
func (h *DepartmentHandler) ListDepartments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, filters.KeyPage, filters.DefaultPage)
		perPage := min(queryInt(r, filters.KeyPerPage, filters.DefaultPerPage), filters.MaxPerPage)

		list, err := h.catalogService.ListDepartments(r.Context(), page, perPage)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load departments", "error", err)
			pageFailure(w, err, "Department", "Failed to load departments")

			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

func (h *DepartmentHandler) GetDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		dept, err := h.catalogService.GetDepartment(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to load department", "department_id", id, "error", err)
			pageFailure(w, err, "Department", "Failed to load department")

			return
		}

		response.Success(w, http.StatusOK, dept)
	}
}

// for eg: GET /api/v1/departments/3/products?sort_by=rating&sort_order=desc
func (h *DepartmentHandler) DepartmentProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		state := filters.FromQuery(r.URL.Query())
		compact := h.layout.CompactAt(viewportWidth(r))

		page, err := h.catalogService.DepartmentPage(r.Context(), id, state, compact)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to load department products", "department_id", id, "error", err)
			pageFailure(w, err, "Department", "Failed to load products")

			return
		}

		response.Success(w, http.StatusOK, page)
	}
}
