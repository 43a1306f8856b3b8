package ports

import (
	"context"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, experience *domain.Experience)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, experience *domain.Experience)
}
