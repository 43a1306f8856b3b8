package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE idempotency_key = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get booking by idempotency key: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) GetByReference(ctx context.Context, referenceID, email string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE reference_id = $1 AND customer_email = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, referenceID, email)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) HasActiveBookingForSlot(ctx context.Context, email, experienceID, slotID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, hasActiveForSlotQuery,
		email, experienceID, slotID, domain.BookingStatusCancelled,
	)
	if err != nil {
		return false, fmt.Errorf("check slot booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan slot booking: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) CountActiveBookingsByEmail(ctx context.Context, email string) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countActiveByEmailQuery, email, domain.BookingStatusCancelled)
	if err != nil {
		return 0, fmt.Errorf("count bookings by email: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan bookings count: %w", err)
	}
	return n, nil
}
