package catalog

import (
	"sort"
	"strings"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortNewest    SortOption = "newest"
	SortRating    SortOption = "rating"
)

// Filter describes one catalog query. CategoryID and Query are mutually
// exclusive entry points; when both are set the category wins.
type Filter struct {
	CategoryID string
	Query      string
	MinPrice   float64
	MaxPrice   float64
	Brands     []string
	Sort       SortOption
}

// Apply runs the filter pipeline over the product collection and returns a
// new sorted slice. The collection is small and static, so everything is
// recomputed from scratch on each call.
func Apply(products []domain.Product, f Filter) []domain.Product {
	var result []domain.Product

	switch {
	case f.CategoryID != "":
		result = ByCategory(products, f.CategoryID)
	case f.Query != "":
		result = Search(products, f.Query)
	default:
		result = append(result, products...)
	}

	if f.MinPrice > 0 || f.MaxPrice > 0 {
		max := f.MaxPrice
		if max <= 0 {
			max = float64(1<<63 - 1)
		}
		kept := result[:0]
		for _, p := range result {
			price := p.EffectivePrice()
			if price >= f.MinPrice && price <= max {
				kept = append(kept, p)
			}
		}
		result = kept
	}

	if len(f.Brands) > 0 {
		brands := make(map[string]struct{}, len(f.Brands))
		for _, b := range f.Brands {
			brands[b] = struct{}{}
		}
		kept := result[:0]
		for _, p := range result {
			if p.Brand == "" {
				continue
			}
			if _, ok := brands[p.Brand]; ok {
				kept = append(kept, p)
			}
		}
		result = kept
	}

	Sort(result, f.Sort)
	return result
}

// Sort orders products in place. Unknown options fall back to featured.
func Sort(products []domain.Product, option SortOption) {
	switch option {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	case SortNewest:
		// No reliable recency signal; seeded IDs are chronological so the
		// descending ID order stands in for it.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortFeatured:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			return products[i].Rating > products[j].Rating
		})
	}
}

// ByCategory keeps products belonging to the given category.
func ByCategory(products []domain.Product, categoryID string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Featured keeps products flagged for promotional placement.
func Featured(products []domain.Product) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// OnSale keeps products with a sale price set.
func OnSale(products []domain.Product) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.OnSale() {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query case-insensitively against product name,
// description and tags.
func Search(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
