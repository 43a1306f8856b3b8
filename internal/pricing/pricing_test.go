package pricing

import (
	"testing"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name        string
		subtotal    decimal.Decimal
		kind        domain.DiscountType
		value       decimal.Decimal
		maxDiscount *decimal.Decimal
		want        decimal.Decimal
	}{
		{"percentage under cap", dec(1000), domain.DiscountPercentage, dec(20), decPtr(500), dec(200)},
		{"percentage capped", dec(10000), domain.DiscountPercentage, dec(20), decPtr(500), dec(500)},
		{"percentage without cap", dec(10000), domain.DiscountPercentage, dec(20), nil, dec(2000)},
		{"zero cap means no cap", dec(10000), domain.DiscountPercentage, dec(20), decPtr(0), dec(2000)},
		{"flat", dec(1000), domain.DiscountFlat, dec(500), nil, dec(500)},
		{"flat clamped to subtotal", dec(100), domain.DiscountFlat, dec(500), nil, dec(100)},
		{"fractional percentage", dec(999), domain.DiscountPercentage, dec(15), nil, decimal.RequireFromString("149.85")},
		{"rounded to paise", dec(333), domain.DiscountPercentage, decimal.RequireFromString("12.5"), nil, decimal.RequireFromString("41.63")},
		{"rounded down to paise", decimal.RequireFromString("999.99"), domain.DiscountPercentage, decimal.RequireFromString("33.33"), nil, decimal.RequireFromString("333.30")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Discount(tt.subtotal, tt.kind, tt.value, tt.maxDiscount)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestGST(t *testing.T) {
	tax := GST(dec(1000))
	assert.True(t, dec(90).Equal(tax.CGST))
	assert.True(t, dec(90).Equal(tax.SGST))
	assert.True(t, dec(180).Equal(tax.Total))
}

func TestGST_RoundsEachComponent(t *testing.T) {
	// 9% от 105 = 9.45 -> 9, сумма 18, а не round(18.9) = 19
	tax := GST(dec(105))
	assert.True(t, dec(9).Equal(tax.CGST))
	assert.True(t, dec(18).Equal(tax.Total))

	// 9% от 50 = 4.5 -> 5 (half-up)
	tax = GST(dec(50))
	assert.True(t, dec(5).Equal(tax.CGST))
	assert.True(t, dec(10).Equal(tax.Total))
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(dec(500), 2, dec(200))

	assert.True(t, dec(1000).Equal(q.Subtotal))
	assert.True(t, dec(200).Equal(q.Discount))
	assert.True(t, dec(800).Equal(q.Taxable))
	assert.True(t, dec(72).Equal(q.Tax.CGST))
	assert.True(t, dec(944).Equal(q.Total))
	assert.True(t, q.Total.Equal(q.Subtotal.Sub(q.Discount).Add(q.Tax.CGST).Add(q.Tax.SGST)))
}

func TestNewQuote_DiscountNeverExceedsSubtotal(t *testing.T) {
	q := NewQuote(dec(100), 1, dec(500))

	assert.True(t, dec(100).Equal(q.Discount))
	assert.True(t, q.Taxable.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestNewQuote_AmountsFitTwoDecimalPlaces(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice decimal.Decimal
		qty       int
		percent   decimal.Decimal
		wantTotal decimal.Decimal
	}{
		{"12.5% of 333", dec(333), 1, decimal.RequireFromString("12.5"), decimal.RequireFromString("343.37")},
		{"33.33% of 2x499.99", decimal.RequireFromString("499.99"), 2, decimal.RequireFromString("33.33"), decimal.RequireFromString("786.69")},
		{"0.15% of 999", dec(999), 1, decimal.RequireFromString("0.15"), decimal.RequireFromString("1177.50")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal := Subtotal(tt.unitPrice, tt.qty)
			discount := Discount(subtotal, domain.DiscountPercentage, tt.percent, nil)
			q := NewQuote(tt.unitPrice, tt.qty, discount)

			// значения после записи в NUMERIC(12,2) не должны меняться
			for _, v := range []decimal.Decimal{q.Subtotal, q.Discount, q.Tax.CGST, q.Tax.SGST, q.Total} {
				assert.True(t, v.Equal(v.Round(2)), "%s has more than 2 decimal places", v)
			}
			assert.True(t, q.Total.Equal(q.Subtotal.Sub(q.Discount).Add(q.Tax.CGST).Add(q.Tax.SGST)))
			assert.True(t, tt.wantTotal.Equal(q.Total), "want %s, got %s", tt.wantTotal, q.Total)
		})
	}
}

func TestNewQuote_RoundsUnroundedDiscount(t *testing.T) {
	q := NewQuote(dec(333), 1, decimal.RequireFromString("41.625"))

	assert.True(t, decimal.RequireFromString("41.63").Equal(q.Discount))
	assert.True(t, decimal.RequireFromString("343.37").Equal(q.Total))
}
