package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
	"github.com/msmahatha/agroCart-harvest-hub/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartAccess is the slice of the cart service order placement needs.
type CartAccess interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// ProductGetter resolves cart lines to products at placement time.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo      Repository
	carts     CartAccess
	products  ProductGetter
	policy    pricing.Policy
	publisher event.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, carts CartAccess, products ProductGetter, policy pricing.Policy, publisher event.Publisher, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		products:  products,
		policy:    policy,
		publisher: publisher,
		logger:    logger,
	}
}

// Place snapshots the user's cart into an order, persists it, clears the
// cart and announces the order. Unit prices are converted to the display
// currency exactly once, here; the quote then works entirely in that
// currency. The order stands even if clearing the cart or publishing the
// event fails afterwards.
func (s *Service) Place(ctx context.Context, user domain.User) (*domain.Order, error) {
	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	var subtotal float64
	for _, line := range cart.Items {
		p, err := s.products.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve product %s: %w", line.ProductID, err)
		}
		unitPrice := s.policy.Convert(p.EffectivePrice())
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
		})
		subtotal += unitPrice * float64(line.Quantity)
	}

	quote := s.policy.QuoteSubtotal(subtotal)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusProcessing,
		Subtotal:  quote.Subtotal,
		Shipping:  quote.Shipping,
		Tax:       quote.Tax,
		Total:     quote.Total,
		Currency:  quote.Currency,
		ItemCount: len(items),
		Items:     items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.Clear(ctx, user.ID); err != nil {
		s.logger.Warn("failed to clear cart after order placement",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	s.announce(order, user)

	return order, nil
}

func (s *Service) announce(order *domain.Order, user domain.User) {
	if s.publisher == nil {
		return
	}

	items := make([]event.OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = event.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.publisher.PublishOrderPlaced(ctx, event.OrderPlaced{
		OrderID:   order.ID.String(),
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Items:     items,
		Total:     order.Total,
		Currency:  order.Currency,
		PlacedAt:  order.CreatedAt,
	})
	if err != nil {
		s.logger.Warn("failed to publish order-placed event",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *Service) ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListOrdersByUserID(ctx, userID)
}

func (s *Service) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListAllOrders(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}
