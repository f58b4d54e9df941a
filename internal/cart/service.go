package cart

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

// Service owns cart mutations. Quantity below 1 on an update means removal;
// adds for a product that already has a line increment it. Stock ceilings are
// not enforced here.
type Service struct {
	repo   Repository
	cache  Cache
	logger *zap.Logger
	sfg    singleflight.Group // prevents cache stampede
}

func NewService(repo Repository, cache Cache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {

		cached, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cached, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("cache get error", zap.Error(err))
		}

		loaded, errGet := s.repo.GetCart(ctx, userID)
		if errGet != nil && errors.Is(errGet, ErrCartNotFound) {
			// no cart yet means an empty cart
			return &domain.Cart{
				UserID:    userID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, loaded); errSet != nil {
				s.logger.Warn("cache set error", zap.Error(errSet))
			}
		}()

		return loaded, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *Service) AddItem(ctx context.Context, userID string, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	item := domain.CartItem{ProductID: productID, Quantity: quantity}
	if err := s.repo.AddItem(ctx, userID, item); err != nil {
		s.logger.Error("repo add item error", zap.Error(err))
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value below
// 1 removes the line instead.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, userID, productID)
	}

	if err := s.repo.UpdateItemQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrCartNotFound) {
			return err
		}
		s.logger.Error("repo update item quantity error", zap.Error(err))
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// RemoveItem deletes the matching line. Removing an absent line or from an
// absent cart is a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, userID string, productID string) error {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, ErrCartNotFound) || errors.Is(err, ErrItemNotFound) {
			return nil
		}
		s.logger.Error("repo remove item error", zap.Error(err))
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// Clear empties the cart. Clearing an absent cart is a no-op.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteCart(ctx, userID); err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return nil
		}
		s.logger.Error("repo delete cart error", zap.Error(err))
		return err
	}

	s.invalidateCache(userID)
	return nil
}

func (s *Service) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn("cache invalidate error", zap.Error(err))
	}
}
