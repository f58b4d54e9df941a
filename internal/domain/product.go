package domain

import "time"

type Product struct {
	ID             string            `json:"id" db:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	SalePrice      *float64          `json:"sale_price,omitempty"`
	ImageURL       string            `json:"image_url"`
	Gallery        []string          `json:"gallery,omitempty"`
	CategoryID     string            `json:"category_id"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	IsOrganic      bool              `json:"is_organic"`
	Brand          string            `json:"brand,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Featured       bool              `json:"featured"`
	Slug           string            `json:"slug"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// EffectivePrice is the sale price when one is set, otherwise the base price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

func (p Product) OnSale() bool {
	return p.SalePrice != nil
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Slug        string `json:"slug"`
	Featured    bool   `json:"featured"`
}
