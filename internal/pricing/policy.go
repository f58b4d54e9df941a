package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the storefront's money rules. Product prices are authored in
// USD; ConversionRate turns an authored amount into the display currency.
// Convert must be applied exactly once between an authored price and a
// charged total.
type Policy struct {
	Currency        string  `yaml:"currency"`
	ConversionRate  float64 `yaml:"conversion_rate"`
	FreeShippingMin float64 `yaml:"free_shipping_min"`
	ShippingFlatFee float64 `yaml:"shipping_flat_fee"`
	TaxRate         float64 `yaml:"tax_rate"`
}

// Quote is the order total breakdown for a subtotal, all amounts in the
// policy currency.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// DefaultPolicy is the canonical rule set: free delivery at or above 1000,
// flat 100 fee below, 5% tax, USD prices displayed in INR at 83.
func DefaultPolicy() Policy {
	return Policy{
		Currency:        "INR",
		ConversionRate:  83,
		FreeShippingMin: 1000,
		ShippingFlatFee: 100,
		TaxRate:         0.05,
	}
}

// LoadPolicy reads a policy YAML file, filling unset fields from the
// defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.ConversionRate <= 0 {
		return fmt.Errorf("conversion_rate must be positive, got %v", p.ConversionRate)
	}
	if p.FreeShippingMin < 0 || p.ShippingFlatFee < 0 {
		return fmt.Errorf("shipping amounts must not be negative")
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return fmt.Errorf("tax_rate must be in [0, 1), got %v", p.TaxRate)
	}
	return nil
}

// Convert turns an authored amount into the display currency. This is the
// single conversion point.
func (p Policy) Convert(authored float64) float64 {
	return authored * p.ConversionRate
}

// QuoteSubtotal computes shipping, tax and grand total for a subtotal already
// in the policy currency. Shipping is zero for an empty cart and at or above
// the free-shipping threshold; tax is a fixed percentage of the subtotal
// regardless of shipping.
func (p Policy) QuoteSubtotal(subtotal float64) Quote {
	var shipping float64
	if subtotal > 0 && subtotal < p.FreeShippingMin {
		shipping = p.ShippingFlatFee
	}
	tax := subtotal * p.TaxRate

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
		Currency: p.Currency,
	}
}
