package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	Clear(ctx context.Context, userID string) error
}

type WishlistHandler struct {
	wishlists WishlistService
	timeout   time.Duration
}

func NewWishlistHandler(wishlists WishlistService, timeout time.Duration) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, timeout: timeout}
}

type WishlistResponseDTO struct {
	ProductIDs []string `json:"product_ids"`
	ItemCount  int      `json:"item_count"`
}

func wishlistResponse(w *domain.Wishlist) WishlistResponseDTO {
	ids := w.ProductIDs
	if ids == nil {
		ids = []string{}
	}
	return WishlistResponseDTO{ProductIDs: ids, ItemCount: w.ItemCount()}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())

	wl, err := h.wishlists.GetWishlist(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load wishlist")
		return
	}
	respondJSON(w, http.StatusOK, wishlistResponse(wl))
}

func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	if err := h.wishlists.Add(ctx, user.ID, productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add product")
		return
	}

	wl, err := h.wishlists.GetWishlist(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load wishlist")
		return
	}
	respondJSON(w, http.StatusCreated, wishlistResponse(wl))
}

func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	if err := h.wishlists.Remove(ctx, user.ID, productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove product")
		return
	}

	wl, err := h.wishlists.GetWishlist(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load wishlist")
		return
	}
	respondJSON(w, http.StatusOK, wishlistResponse(wl))
}

// ToggleProduct flips membership and reports the resulting state.
func (h *WishlistHandler) ToggleProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	inWishlist, err := h.wishlists.Toggle(ctx, user.ID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to toggle product")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id":  productID,
		"in_wishlist": inWishlist,
	})
}

func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())

	if err := h.wishlists.Clear(ctx, user.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear wishlist")
		return
	}

	respondJSON(w, http.StatusOK, WishlistResponseDTO{ProductIDs: []string{}})
}
