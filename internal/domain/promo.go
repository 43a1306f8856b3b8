package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

type PromoCode struct {
	ID                   string
	Code                 string
	DiscountType         DiscountType
	DiscountValue        decimal.Decimal
	MinOrderValue        *decimal.Decimal
	MaxDiscount          *decimal.Decimal
	ValidFrom            time.Time
	ValidUntil           time.Time
	UsageLimit           *int
	UsedCount            int
	ApplicableCategories []Category
	FirstTimeUserOnly    bool
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NormalizeCode is the stored form of a promo code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p *PromoCode) Description() string {
	if p.DiscountType == DiscountPercentage {
		return fmt.Sprintf("%s%% off", p.DiscountValue.String())
	}
	return fmt.Sprintf("₹%s off", p.DiscountValue.String())
}

func (p *PromoCode) UsageExhausted() bool {
	return p.UsageLimit != nil && *p.UsageLimit > 0 && p.UsedCount >= *p.UsageLimit
}

func (p *PromoCode) AppliesTo(c Category) bool {
	if len(p.ApplicableCategories) == 0 {
		return true
	}
	for _, allowed := range p.ApplicableCategories {
		if allowed == c {
			return true
		}
	}
	return false
}

type PromoPreviewInput struct {
	Code          string
	Subtotal      decimal.Decimal
	Category      Category
	CustomerEmail string
}

type PromoPreview struct {
	Code           string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	MaxDiscount    *decimal.Decimal
	DiscountAmount decimal.Decimal
	Subtotal       decimal.Decimal
	FinalAmount    decimal.Decimal
	Description    string
}
