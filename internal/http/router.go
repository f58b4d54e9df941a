package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
	"github.com/msmahatha/agroCart-harvest-hub/internal/pricing"
)

// RouterConfig carries everything the HTTP surface depends on.
type RouterConfig struct {
	Catalog        catalog.Repository
	Carts          CartService
	Wishlists      WishlistService
	Orders         OrderService
	Auth           AuthService
	Hub            *event.Hub
	Policy         pricing.Policy
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

// NewRouter assembles the public and admin API.
func NewRouter(cfg RouterConfig) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	catalogHandler := NewCatalogHandler(cfg.Catalog, timeout)
	cartHandler := NewCartHandler(cfg.Carts, cfg.Catalog, cfg.Policy, timeout)
	wishlistHandler := NewWishlistHandler(cfg.Wishlists, timeout)
	ordersHandler := NewOrdersHandler(cfg.Orders, timeout)
	authHandler := NewAuthHandler(cfg.Auth, timeout)
	adminHandler := NewAdminHandler(cfg.Catalog, cfg.Orders, cfg.Hub, cfg.Logger, timeout)

	requireAuth := AuthMiddleware(cfg.Auth)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(requireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/{slug}", catalogHandler.GetProductBySlug)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCategories)
			r.Get("/{slug}", catalogHandler.GetCategoryBySlug)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", wishlistHandler.GetWishlist)
			r.Delete("/", wishlistHandler.ClearWishlist)
			r.Post("/items/{product_id}", wishlistHandler.AddProduct)
			r.Put("/items/{product_id}", wishlistHandler.ToggleProduct)
			r.Delete("/items/{product_id}", wishlistHandler.RemoveProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", ordersHandler.PlaceOrder)
			r.Get("/", ordersHandler.ListMyOrders)
			r.Get("/{order_id}", ordersHandler.GetOrder)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(AdminOnly)
			r.Post("/products", adminHandler.CreateProduct)
			r.Put("/products/{product_id}", adminHandler.UpdateProduct)
			r.Delete("/products/{product_id}", adminHandler.DeleteProduct)
			r.Get("/products/export", adminHandler.ExportProducts)
			r.Get("/orders", adminHandler.ListOrders)
			r.Put("/orders/{order_id}/status", adminHandler.UpdateOrderStatus)
			r.Get("/orders/live", adminHandler.LiveOrders)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
