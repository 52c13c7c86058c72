package handlers

import (
	"context"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/filters"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/aaravmahajanofficial/storefront/internal/views"
)

const ErrCodeSuperseded = "REQUEST_SUPERSEDED"

type ProductHandler struct {
	catalogService service.CatalogService
	layout         *views.Layout
	inflight       *views.SupersedeGroup
}

func NewProductHandler(catalogService service.CatalogService, layout *views.Layout) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		layout:         layout,
		inflight:       &views.SupersedeGroup{},
	}
}

// for eg: GET /api/v1/products?category=Shoes&sort_by=sale_price&sort_order=asc
//
// Requests carrying the same X-Client-ID supersede each other: a newer
// listing request cancels the older one, which then answers 409.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		state := filters.FromQuery(r.URL.Query())
		compact := h.layout.CompactAt(viewportWidth(r))

		superseder := &views.Superseder{}
		if client := r.Header.Get(middleware.ClientIDHeader); client != "" {
			var release func()

			superseder, release = h.inflight.Acquire(client)
			defer release()
		}

		var page *views.ListingPage

		applied, err := views.Latest(r.Context(), superseder,
			func(ctx context.Context) (*views.ListingPage, error) {
				return h.catalogService.ListingPage(ctx, state, compact)
			},
			func(p *views.ListingPage) { page = p },
		)
		if err != nil {
			logger.Error("Failed to load product listing", "error", err, "query", state.Encode())
			pageFailure(w, err, "Product", "Failed to load products")

			return
		}

		if !applied {
			logger.Info("Discarding superseded listing result", "query", state.Encode())
			response.Error(w, appErrors.NewAppError(ErrCodeSuperseded, "Superseded by a newer request", http.StatusConflict))

			return
		}

		response.Success(w, http.StatusOK, page)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		detail, err := h.catalogService.ProductDetail(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to load product", "product_id", id, "error", err)
			pageFailure(w, err, "Product", "Failed to load product")

			return
		}

		response.Success(w, http.StatusOK, detail)
	}
}

func (h *ProductHandler) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, err := h.catalogService.HomePage(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load home page", "error", err)
			pageFailure(w, err, "Page", "Failed to load products")

			return
		}

		response.Success(w, http.StatusOK, home)
	}
}

func (h *ProductHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.catalogService.Stats(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load stats", "error", err)
			pageFailure(w, err, "Statistics", "Failed to load statistics")

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}
