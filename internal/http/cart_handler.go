package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msmahatha/agroCart-harvest-hub/internal/cart"
	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
	"github.com/msmahatha/agroCart-harvest-hub/internal/pricing"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type CartHandler struct {
	carts   CartService
	catalog catalog.Repository
	policy  pricing.Policy
	timeout time.Duration
}

func NewCartHandler(carts CartService, repo catalog.Repository, policy pricing.Policy, timeout time.Duration) *CartHandler {
	return &CartHandler{carts: carts, catalog: repo, policy: policy, timeout: timeout}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponseDTO is the cart plus its priced summary in the display
// currency.
type CartResponseDTO struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Summary   pricing.Quote     `json:"summary"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())

	c, err := h.carts.GetCart(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	h.respondCart(ctx, w, http.StatusOK, c)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if _, err := h.catalog.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	if err := h.carts.AddItem(ctx, user.ID, req.ProductID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}

	c, err := h.carts.GetCart(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	h.respondCart(ctx, w, http.StatusCreated, c)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	// Quantity below one removes the line.
	if err := h.carts.UpdateQuantity(ctx, user.ID, productID, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) || errors.Is(err, cart.ErrCartNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "item not in cart")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	c, err := h.carts.GetCart(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	h.respondCart(ctx, w, http.StatusOK, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	if err := h.carts.RemoveItem(ctx, user.ID, productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	c, err := h.carts.GetCart(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	h.respondCart(ctx, w, http.StatusOK, c)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	user := userFromContext(r.Context())

	if err := h.carts.Clear(ctx, user.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	h.respondCart(ctx, w, http.StatusOK, &domain.Cart{UserID: user.ID})
}

func (h *CartHandler) respondCart(ctx context.Context, w http.ResponseWriter, status int, c *domain.Cart) {
	products, err := h.productIndex(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to price cart")
		return
	}

	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	subtotal := h.policy.Convert(c.Subtotal(products))
	respondJSON(w, status, CartResponseDTO{
		Items:     items,
		ItemCount: c.ItemCount(),
		Summary:   h.policy.QuoteSubtotal(subtotal),
	})
}

func (h *CartHandler) productIndex(ctx context.Context) (map[string]domain.Product, error) {
	products, err := h.catalog.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index, nil
}
