package ports

import (
	"context"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

// Store запускает fn в одной транзакции: commit при nil, иначе rollback.
type Store interface {
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx - операции, доступные внутри транзакции бронирования/отмены.
// Методы *ForUpdate и GetPromoByCode блокируют строку до конца транзакции.
type Tx interface {
	GetExperienceForUpdate(ctx context.Context, id string) (*domain.Experience, error)
	UpdateSlotBookedSpots(ctx context.Context, slotID string, bookedSpots int) error
	IncrementTotalBookings(ctx context.Context, experienceID string) error

	GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	IncrementPromoUsage(ctx context.Context, promoID string) error

	CountActiveBookingsByEmail(ctx context.Context, email string) (int, error)
	HasActiveBookingForSlot(ctx context.Context, email, experienceID, slotID string) (bool, error)
	InsertBooking(ctx context.Context, b *domain.Booking) error
	GetBookingForUpdate(ctx context.Context, referenceID, email string) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, b *domain.Booking) error
}
