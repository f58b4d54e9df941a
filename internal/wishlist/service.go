package wishlist

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

// Service owns wishlist membership. A product appears at most once; adding
// an already-present product is a no-op.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	w, err := s.repo.GetWishlist(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrWishlistNotFound) {
			return &domain.Wishlist{
				UserID:    userID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Add(ctx context.Context, userID string, productID string) error {
	if err := s.repo.AddProduct(ctx, userID, productID); err != nil {
		s.logger.Error("repo add product error", zap.Error(err))
		return err
	}
	return nil
}

// Remove deletes the entry. Removing an absent product is a no-op.
func (s *Service) Remove(ctx context.Context, userID string, productID string) error {
	if err := s.repo.RemoveProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, ErrWishlistNotFound) {
			return nil
		}
		s.logger.Error("repo remove product error", zap.Error(err))
		return err
	}
	return nil
}

// Toggle adds the product when absent and removes it when present. It
// returns the resulting membership.
func (s *Service) Toggle(ctx context.Context, userID string, productID string) (bool, error) {
	w, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return false, err
	}

	if w.Contains(productID) {
		if err := s.Remove(ctx, userID, productID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.Add(ctx, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Contains(ctx context.Context, userID string, productID string) (bool, error) {
	w, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}

// Clear empties the wishlist. Clearing an absent wishlist is a no-op.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteWishlist(ctx, userID); err != nil {
		if errors.Is(err, ErrWishlistNotFound) {
			return nil
		}
		s.logger.Error("repo delete wishlist error", zap.Error(err))
		return err
	}
	return nil
}
