package event

import (
	"context"
	"time"
)

// OrderItem mirrors the order line shape on the wire.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderPlaced is published after an order row is committed. Consumers send
// the confirmation email and feed the admin live view.
type OrderPlaced struct {
	OrderID   string      `json:"order_id"`
	UserID    string      `json:"user_id"`
	UserEmail string      `json:"user_email"`
	UserName  string      `json:"user_name"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Currency  string      `json:"currency"`
	PlacedAt  time.Time   `json:"placed_at"`
}

// Publisher delivers order-placed events best-effort; a failed publish never
// affects the already-placed order.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlaced) error
}
