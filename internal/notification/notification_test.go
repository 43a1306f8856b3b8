package notification

import (
	"context"
	"testing"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ReferenceID:   "BKAB12CD34",
		BookingDate:   time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "06:00 AM",
		Quantity:      2,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Subtotal:      decimal.NewFromInt(1000),
		Discount:      decimal.NewFromInt(200),
		CGST:          decimal.NewFromInt(72),
		SGST:          decimal.NewFromInt(72),
		Total:         decimal.NewFromInt(944),
	}
}

func TestMulti_FansOut(t *testing.T) {
	first := mocks.NewMockBookingNotifier(t)
	second := mocks.NewMockBookingNotifier(t)

	b := testBooking()
	e := &domain.Experience{Title: "Sunrise Kayaking"}
	ctx := context.Background()

	first.EXPECT().NotifyBookingConfirmed(ctx, b, e).Return().Once()
	second.EXPECT().NotifyBookingConfirmed(ctx, b, e).Return().Once()
	first.EXPECT().NotifyBookingCancelled(ctx, b, e).Return().Once()
	second.EXPECT().NotifyBookingCancelled(ctx, b, e).Return().Once()

	m := Multi{first, second}
	m.NotifyBookingConfirmed(ctx, b, e)
	m.NotifyBookingCancelled(ctx, b, e)
}

func TestDisabledNotifiersAreNoop(t *testing.T) {
	log := newTestLogger(t)

	tg, err := NewTelegramNotifier("", 0, log)
	require.NoError(t, err)
	email := NewEmailNotifier(SMTPConfig{}, log)

	b := testBooking()
	assert.NotPanics(t, func() {
		Multi{tg, email}.NotifyBookingConfirmed(context.Background(), b, nil)
		Multi{tg, email}.NotifyBookingCancelled(context.Background(), b, nil)
	})
}

func TestConfirmationBody(t *testing.T) {
	b := testBooking()
	e := &domain.Experience{Title: "Sunrise Kayaking", Location: "Goa"}

	body := confirmationBody(b, e)

	assert.Contains(t, body, "Hi Asha Rao")
	assert.Contains(t, body, "BKAB12CD34")
	assert.Contains(t, body, "Experience: Sunrise Kayaking")
	assert.Contains(t, body, "Location: Goa")
	assert.Contains(t, body, "Discount: -₹200.00")
	assert.Contains(t, body, "Total: ₹944.00")
}

func TestCancellationBody_RemovedExperience(t *testing.T) {
	body := cancellationBody(testBooking(), nil)

	assert.Contains(t, body, "(removed)")
	assert.Contains(t, body, "₹944.00")
}
