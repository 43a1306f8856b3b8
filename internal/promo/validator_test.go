package promo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	promos   map[string]*domain.PromoCode
	bookings map[string]int
	err      error
}

func (f *fakeSource) GetPromoByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.promos[code]
	if !ok {
		return nil, domain.ErrPromoNotFound
	}
	return p, nil
}

func (f *fakeSource) CountActiveBookingsByEmail(_ context.Context, email string) (int, error) {
	return f.bookings[email], nil
}

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func basePromo() *domain.PromoCode {
	maxDiscount := dec(500)
	return &domain.PromoCode{
		ID:            "p1",
		Code:          "WELCOME20",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: dec(20),
		MaxDiscount:   &maxDiscount,
		ValidFrom:     now.Add(-24 * time.Hour),
		ValidUntil:    now.Add(24 * time.Hour),
		Active:        true,
	}
}

func newSource(p *domain.PromoCode) *fakeSource {
	return &fakeSource{
		promos:   map[string]*domain.PromoCode{p.Code: p},
		bookings: map[string]int{},
	}
}

func TestValidate_Success(t *testing.T) {
	src := newSource(basePromo())

	res, err := Validate(context.Background(), src, Request{Code: " welcome20 ", Subtotal: dec(1000)}, now)

	require.NoError(t, err)
	assert.Equal(t, "WELCOME20", res.Promo.Code)
	assert.True(t, dec(200).Equal(res.DiscountAmount))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.PromoCode)
		req     Request
		emails  map[string]int
		wantErr error
	}{
		{
			name:    "unknown code",
			req:     Request{Code: "NOPE", Subtotal: dec(1000)},
			wantErr: domain.ErrPromoNotFound,
		},
		{
			name:    "inactive",
			mutate:  func(p *domain.PromoCode) { p.Active = false },
			wantErr: domain.ErrPromoNotFound,
		},
		{
			name:    "not yet valid",
			mutate:  func(p *domain.PromoCode) { p.ValidFrom = now.Add(time.Hour) },
			wantErr: domain.ErrPromoNotYetValid,
		},
		{
			name:    "expired",
			mutate:  func(p *domain.PromoCode) { p.ValidUntil = now.Add(-time.Hour) },
			wantErr: domain.ErrPromoExpired,
		},
		{
			name: "usage limit reached",
			mutate: func(p *domain.PromoCode) {
				limit := 5
				p.UsageLimit = &limit
				p.UsedCount = 5
			},
			wantErr: domain.ErrPromoUsageLimitReached,
		},
		{
			name: "below minimum order",
			mutate: func(p *domain.PromoCode) {
				minOrder := dec(2000)
				p.MinOrderValue = &minOrder
			},
			wantErr: domain.ErrBelowMinimumOrder,
		},
		{
			name:    "category not eligible",
			mutate:  func(p *domain.PromoCode) { p.ApplicableCategories = []domain.Category{domain.CategoryBeach} },
			req:     Request{Code: "WELCOME20", Subtotal: dec(1000), Category: domain.CategoryKayaking},
			wantErr: domain.ErrCategoryNotEligible,
		},
		{
			name:    "not first time user",
			mutate:  func(p *domain.PromoCode) { p.FirstTimeUserOnly = true },
			req:     Request{Code: "WELCOME20", Subtotal: dec(1000), CustomerEmail: "a@b.com"},
			emails:  map[string]int{"a@b.com": 1},
			wantErr: domain.ErrNotFirstTimeUser,
		},
		{
			// первая неудачная проверка побеждает
			name: "expired wins over usage limit",
			mutate: func(p *domain.PromoCode) {
				limit := 1
				p.UsageLimit = &limit
				p.UsedCount = 1
				p.ValidUntil = now.Add(-time.Hour)
			},
			wantErr: domain.ErrPromoExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basePromo()
			if tt.mutate != nil {
				tt.mutate(p)
			}
			src := newSource(p)
			if tt.emails != nil {
				src.bookings = tt.emails
			}
			req := tt.req
			if req.Code == "" {
				req = Request{Code: "WELCOME20", Subtotal: dec(1000)}
			}

			_, err := Validate(context.Background(), src, req, now)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ZeroLimitsMeanUnset(t *testing.T) {
	p := basePromo()
	zeroLimit := 0
	zeroMin := decimal.Zero
	p.UsageLimit = &zeroLimit
	p.UsedCount = 10
	p.MinOrderValue = &zeroMin

	_, err := Validate(context.Background(), newSource(p), Request{Code: "WELCOME20", Subtotal: dec(100)}, now)

	assert.NoError(t, err)
}

func TestValidate_SkipsOptionalChecksWithoutContext(t *testing.T) {
	p := basePromo()
	p.ApplicableCategories = []domain.Category{domain.CategoryBeach}
	p.FirstTimeUserOnly = true
	src := newSource(p)
	src.bookings["a@b.com"] = 3

	_, err := Validate(context.Background(), src, Request{Code: "WELCOME20", Subtotal: dec(1000)}, now)

	assert.NoError(t, err)
}

func TestValidate_FlatDiscountClampedToSubtotal(t *testing.T) {
	p := basePromo()
	p.Code = "FLAT500"
	p.DiscountType = domain.DiscountFlat
	p.DiscountValue = dec(500)
	p.MaxDiscount = nil

	res, err := Validate(context.Background(), newSource(p), Request{Code: "flat500", Subtotal: dec(100)}, now)

	require.NoError(t, err)
	assert.True(t, dec(100).Equal(res.DiscountAmount))
}

func TestValidate_SourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}

	_, err := Validate(context.Background(), src, Request{Code: "WELCOME20", Subtotal: dec(1000)}, now)

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
