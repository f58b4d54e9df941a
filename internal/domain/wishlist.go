package domain

import "time"

// Wishlist holds product references without quantities. A product appears
// at most once.
type Wishlist struct {
	ID         string    `bson:"_id,omitempty" json:"-"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ProductIDs []string  `bson:"product_ids" json:"product_ids"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) ItemCount() int {
	return len(w.ProductIDs)
}
