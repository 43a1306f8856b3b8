package promo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/pricing"
	"github.com/shopspring/decimal"
)

// Source отдает промокод и историю бронирований клиента.
// В транзакции бронирования промокод должен читаться с блокировкой строки.
type Source interface {
	GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	CountActiveBookingsByEmail(ctx context.Context, email string) (int, error)
}

// Request describes a promo application. Empty Category or CustomerEmail
// skip the category and first-time checks.
type Request struct {
	Code          string
	Subtotal      decimal.Decimal
	Category      domain.Category
	CustomerEmail string
}

type Result struct {
	Promo          *domain.PromoCode
	DiscountAmount decimal.Decimal
}

func Validate(ctx context.Context, src Source, req Request, now time.Time) (*Result, error) {
	code := domain.NormalizeCode(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: promo code is required", domain.ErrValidation)
	}

	p, err := src.GetPromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("get promo: %w", err)
	}
	if !p.Active {
		return nil, domain.ErrPromoNotFound
	}

	if now.Before(p.ValidFrom) {
		return nil, domain.ErrPromoNotYetValid
	}
	if now.After(p.ValidUntil) {
		return nil, domain.ErrPromoExpired
	}
	if p.UsageExhausted() {
		return nil, domain.ErrPromoUsageLimitReached
	}
	if p.MinOrderValue != nil && p.MinOrderValue.IsPositive() && req.Subtotal.LessThan(*p.MinOrderValue) {
		return nil, fmt.Errorf("%w: minimum order value of ₹%s required", domain.ErrBelowMinimumOrder, p.MinOrderValue.String())
	}
	if req.Category != "" && !p.AppliesTo(req.Category) {
		return nil, domain.ErrCategoryNotEligible
	}

	if p.FirstTimeUserOnly && req.CustomerEmail != "" {
		n, err := src.CountActiveBookingsByEmail(ctx, req.CustomerEmail)
		if err != nil {
			return nil, fmt.Errorf("count bookings by email: %w", err)
		}
		if n > 0 {
			return nil, domain.ErrNotFirstTimeUser
		}
	}

	return &Result{
		Promo:          p,
		DiscountAmount: pricing.Discount(req.Subtotal, p.DiscountType, p.DiscountValue, p.MaxDiscount),
	}, nil
}
