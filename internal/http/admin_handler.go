package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
	"github.com/msmahatha/agroCart-harvest-hub/internal/order"
)

// AdminHandler serves the management surface: catalog CRUD, a spreadsheet
// export, order oversight and a live order feed.
type AdminHandler struct {
	catalog  catalog.Repository
	orders   OrderService
	hub      *event.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
	timeout  time.Duration
}

func NewAdminHandler(repo catalog.Repository, orders OrderService, hub *event.Hub, logger *zap.Logger, timeout time.Duration) *AdminHandler {
	return &AdminHandler{
		catalog: repo,
		orders:  orders,
		hub:     hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger,
		timeout: timeout,
	}
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if p.ID == "" || p.Name == "" || p.Slug == "" || p.Price <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product", "id, name, slug and a positive price are required")
		return
	}

	if err := h.catalog.CreateProduct(ctx, &p); err != nil {
		switch {
		case errors.Is(err, catalog.ErrSlugTaken):
			respondError(w, http.StatusConflict, "slug_taken", "slug already in use")
		case errors.Is(err, catalog.ErrProductExists):
			respondError(w, http.StatusConflict, "product_exists", "product id already in use")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to create product")
		}
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	p.ID = chi.URLParam(r, "product_id")

	if err := h.catalog.UpdateProduct(ctx, &p); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "not_found", "product not found")
		case errors.Is(err, catalog.ErrSlugTaken):
			respondError(w, http.StatusConflict, "slug_taken", "slug already in use")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to update product")
		}
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	id := chi.URLParam(r, "product_id")
	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// ExportProducts streams the catalog as an xlsx workbook.
func (h *AdminHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	products, err := h.catalog.GetAllProducts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build workbook")
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Name", "Category", "Price", "Sale Price", "Stock", "Rating", "Brand", "Slug"} {
		header.AddCell().Value = title
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().Value = p.ID
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.CategoryID
		row.AddCell().SetFloat(p.Price)
		if p.SalePrice != nil {
			row.AddCell().SetFloat(*p.SalePrice)
		} else {
			row.AddCell().Value = ""
		}
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetFloat(p.Rating)
		row.AddCell().Value = p.Brand
		row.AddCell().Value = p.Slug
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	if err := file.Write(w); err != nil {
		h.logger.Warn("failed to write product export", zap.Error(err))
	}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	orders, err := h.orders.ListAllOrders(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load orders")
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

type UpdateStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, h.timeout)
	defer cancel()

	id, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a UUID")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.Status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}

	if err := h.orders.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update status")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": req.Status})
}

// LiveOrders upgrades to a websocket and streams order-placed events until
// the client disconnects.
func (h *AdminHandler) LiveOrders(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // Upgrade already wrote the error response
	}
	defer conn.Close()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(e); err != nil {
				h.logger.Debug("live order feed write failed", zap.Error(err))
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
