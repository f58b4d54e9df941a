package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPolicy() Policy {
	p := DefaultPolicy()
	p.ConversionRate = 1
	return p
}

func TestQuoteSubtotal_BelowThreshold(t *testing.T) {
	q := flatPolicy().QuoteSubtotal(999)

	assert.InDelta(t, 999.0, q.Subtotal, 1e-9)
	assert.InDelta(t, 100.0, q.Shipping, 1e-9)
	assert.InDelta(t, 49.95, q.Tax, 1e-9)
	assert.InDelta(t, 1148.95, q.Total, 1e-9)
}

func TestQuoteSubtotal_AtThreshold(t *testing.T) {
	q := flatPolicy().QuoteSubtotal(1000)

	assert.InDelta(t, 0.0, q.Shipping, 1e-9)
	assert.InDelta(t, 50.0, q.Tax, 1e-9)
	assert.InDelta(t, 1050.0, q.Total, 1e-9)
}

func TestQuoteSubtotal_EmptyCart(t *testing.T) {
	q := flatPolicy().QuoteSubtotal(0)

	assert.Zero(t, q.Shipping)
	assert.Zero(t, q.Tax)
	assert.Zero(t, q.Total)
}

func TestQuoteSubtotal_TaxIndependentOfShipping(t *testing.T) {
	p := flatPolicy()

	below := p.QuoteSubtotal(500)
	above := p.QuoteSubtotal(5000)

	assert.InDelta(t, 500*p.TaxRate, below.Tax, 1e-9)
	assert.InDelta(t, 5000*p.TaxRate, above.Tax, 1e-9)
}

func TestConvert_AppliedOnce(t *testing.T) {
	p := DefaultPolicy()

	assert.InDelta(t, 83.0, p.Convert(1), 1e-9)

	// Quoting a converted subtotal must not convert again.
	q := p.QuoteSubtotal(p.Convert(100))
	assert.InDelta(t, 8300.0, q.Subtotal, 1e-9)
}

func TestLoadPolicy_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pricing.yaml")
	content := []byte("free_shipping_min: 2000\ntax_rate: 0.18\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)

	assert.InDelta(t, 2000.0, p.FreeShippingMin, 1e-9)
	assert.InDelta(t, 0.18, p.TaxRate, 1e-9)
	// Untouched fields keep defaults.
	assert.InDelta(t, 83.0, p.ConversionRate, 1e-9)
	assert.Equal(t, "INR", p.Currency)
}

func TestLoadPolicy_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tax_rate: 2\n"), 0o644))

	_, err := LoadPolicy(path)
	assert.Error(t, err)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
