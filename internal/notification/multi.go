package notification

import (
	"context"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
)

// Multi рассылает событие всем нотификаторам по очереди.
type Multi []ports.BookingNotifier

func (m Multi) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, b, e)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, b, e)
	}
}
