package pricing

import (
	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	gstRate = decimal.NewFromInt(9)
)

// moneyPlaces совпадает с NUMERIC(12,2) в таблице bookings.
const moneyPlaces = 2

// Discount считает скидку промокода, округленную до пайс. Результат всегда в [0, subtotal].
func Discount(subtotal decimal.Decimal, kind domain.DiscountType, value decimal.Decimal, maxDiscount *decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal

	switch kind {
	case domain.DiscountPercentage:
		discount = subtotal.Mul(value).Div(hundred)
		if maxDiscount != nil && maxDiscount.IsPositive() {
			discount = decimal.Min(discount, *maxDiscount)
		}
	case domain.DiscountFlat:
		discount = value
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(discount.Round(moneyPlaces), subtotal)
}

type Tax struct {
	CGST  decimal.Decimal
	SGST  decimal.Decimal
	Total decimal.Decimal
}

// GST округляет каждую компоненту (9%) отдельно до целых.
func GST(taxable decimal.Decimal) Tax {
	component := taxable.Mul(gstRate).Div(hundred).Round(0)
	return Tax{
		CGST:  component,
		SGST:  component,
		Total: component.Add(component),
	}
}

type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Tax      Tax
	Total    decimal.Decimal
}

func Subtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func NewQuote(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) Quote {
	subtotal := Subtotal(unitPrice, quantity)
	discount = decimal.Min(decimal.Max(discount.Round(moneyPlaces), decimal.Zero), subtotal)
	taxable := subtotal.Sub(discount)
	tax := GST(taxable)

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    taxable.Add(tax.Total),
	}
}
