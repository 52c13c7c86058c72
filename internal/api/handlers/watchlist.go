package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type WatchlistHandler struct {
	watchlistService service.WatchlistService
	validator        *validator.Validate
}

func NewWatchlistHandler(watchlistService service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		validator:        validator.New(),
	}
}

func (h *WatchlistHandler) GetWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.watchlistService.GetWatchlist(r.Context()))
	}
}

// AddItem answers 200 for duplicates too; the event kind tells them apart.
func (h *WatchlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.watchlistService.AddItem(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to add item to watchlist", "product_id", req.ProductID, "error", err)
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *WatchlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.watchlistService.RemoveItem(r.Context(), id))
	}
}

func (h *WatchlistHandler) ClearWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.watchlistService.Clear(r.Context()))
	}
}
