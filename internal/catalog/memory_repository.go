package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

// MemoryRepository implements Repository with in-memory storage, seeded from
// the built-in catalog. Used when no database is configured and in tests.
type MemoryRepository struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	order      []string
	categories []domain.Category
}

func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		products:   make(map[string]domain.Product),
		categories: SeedCategories(),
	}
	for _, p := range SeedProducts() {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *MemoryRepository) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) GetProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.products[id].Slug == slug {
			p := r.products[id]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *MemoryRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryRepository) GetCategoryBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			cat := c
			return &cat, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *MemoryRepository) CreateProduct(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; ok {
		return ErrProductExists
	}
	for _, existing := range r.products {
		if existing.Slug == p.Slug {
			return ErrSlugTaken
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemoryRepository) UpdateProduct(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[p.ID]
	if !ok {
		return ErrProductNotFound
	}
	for _, other := range r.products {
		if other.ID != p.ID && other.Slug == p.Slug {
			return ErrSlugTaken
		}
	}
	p.CreatedAt = existing.CreatedAt
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	kept := r.order[:0]
	for _, pid := range r.order {
		if pid != id {
			kept = append(kept, pid)
		}
	}
	r.order = kept
	return nil
}

func (r *MemoryRepository) Close() error { return nil }
