package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
)

type CatalogHandler struct {
	repo    catalog.Repository
	timeout time.Duration
}

func NewCatalogHandler(repo catalog.Repository, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{repo: repo, timeout: timeout}
}

// ListProducts runs the filter pipeline described by the query string:
// ?category=&q=&min_price=&max_price=&brands=a,b&sort=price-low
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	products, err := h.repo.GetAllProducts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	result := catalog.Apply(products, filter)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": result,
		"count":    len(result),
	})
}

func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	product, err := h.repo.GetProductBySlug(ctx, slug)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load categories")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *CatalogHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	category, err := h.repo.GetCategoryBySlug(ctx, slug)
	if errors.Is(err, catalog.ErrCategoryNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load category")
		return
	}

	respondJSON(w, http.StatusOK, category)
}

func filterFromQuery(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()
	filter := catalog.Filter{
		CategoryID: q.Get("category"),
		Query:      q.Get("q"),
		Sort:       catalog.SortOption(q.Get("sort")),
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return catalog.Filter{}, errors.New("min_price must be a non-negative number")
		}
		filter.MinPrice = v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return catalog.Filter{}, errors.New("max_price must be a non-negative number")
		}
		filter.MaxPrice = v
	}
	if raw := q.Get("brands"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				filter.Brands = append(filter.Brands, b)
			}
		}
	}
	return filter, nil
}
