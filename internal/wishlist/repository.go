package wishlist

import (
	"context"
	"errors"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

var ErrWishlistNotFound = errors.New("wishlist not found")

// Repository defines the interface for wishlist data operations.
type Repository interface {
	GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error)
	AddProduct(ctx context.Context, userID string, productID string) error
	RemoveProduct(ctx context.Context, userID string, productID string) error
	DeleteWishlist(ctx context.Context, userID string) error
}
