package ports

import (
	"context"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

type PromoRepo interface {
	GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	CountActiveBookingsByEmail(ctx context.Context, email string) (int, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.PromoCode, error)
}
