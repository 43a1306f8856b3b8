package ports

import (
	"context"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

type BookingRepo interface {
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	GetByReference(ctx context.Context, referenceID, email string) (*domain.Booking, error)
	HasActiveBookingForSlot(ctx context.Context, email, experienceID, slotID string) (bool, error)
	CountActiveBookingsByEmail(ctx context.Context, email string) (int, error)
}
