package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

type Store struct {
	db *dbpg.DB
}

func NewStore(db *dbpg.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RunInTx(ctx context.Context, fn func(tx ports.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&txRepo{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", mapUniqueViolation(err))
	}
	return nil
}

type txRepo struct {
	tx *sql.Tx
}

func (r *txRepo) GetExperienceForUpdate(ctx context.Context, id string) (*domain.Experience, error) {
	// Строка experience - корень агрегата: ее блокировка сериализует все изменения слотов
	query := `SELECT ` + experienceColumns + `
              FROM experiences
              WHERE id = $1
              FOR UPDATE`

	e, err := scanExperience(r.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	slotsQuery := `SELECT ` + slotColumns + `
                   FROM slots
                   WHERE experience_id = $1
                   ORDER BY date, time_slot`
	rows, err := r.tx.QueryContext(ctx, slotsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		e.Slots = append(e.Slots, s)
	}

	return e, rows.Err()
}

func (r *txRepo) UpdateSlotBookedSpots(ctx context.Context, slotID string, bookedSpots int) error {
	query := `UPDATE slots SET booked_spots = $2 WHERE id = $1`

	res, err := r.tx.ExecContext(ctx, query, slotID, bookedSpots)
	if err != nil {
		return fmt.Errorf("update booked spots: %w", err)
	}
	return expectOne(res, domain.ErrSlotNotFound)
}

func (r *txRepo) IncrementTotalBookings(ctx context.Context, experienceID string) error {
	query := `UPDATE experiences
              SET total_bookings = total_bookings + 1, updated_at = now()
              WHERE id = $1`

	res, err := r.tx.ExecContext(ctx, query, experienceID)
	if err != nil {
		return fmt.Errorf("increment total bookings: %w", err)
	}
	return expectOne(res, domain.ErrExperienceNotFound)
}

func (r *txRepo) GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + `
              FROM promo_codes
              WHERE code = $1
              FOR UPDATE`

	return scanPromo(r.tx.QueryRowContext(ctx, query, code))
}

func (r *txRepo) IncrementPromoUsage(ctx context.Context, promoID string) error {
	query := `UPDATE promo_codes
              SET used_count = used_count + 1, updated_at = now()
              WHERE id = $1`

	res, err := r.tx.ExecContext(ctx, query, promoID)
	if err != nil {
		return fmt.Errorf("increment promo usage: %w", err)
	}
	return expectOne(res, domain.ErrPromoNotFound)
}

func (r *txRepo) CountActiveBookingsByEmail(ctx context.Context, email string) (int, error) {
	var n int
	err := r.tx.QueryRowContext(ctx, countActiveByEmailQuery, email, domain.BookingStatusCancelled).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookings by email: %w", err)
	}
	return n, nil
}

func (r *txRepo) HasActiveBookingForSlot(ctx context.Context, email, experienceID, slotID string) (bool, error) {
	var exists bool
	err := r.tx.QueryRowContext(ctx, hasActiveForSlotQuery,
		email, experienceID, slotID, domain.BookingStatusCancelled,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot booking: %w", err)
	}
	return exists, nil
}

func (r *txRepo) InsertBooking(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
                      $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err := r.tx.ExecContext(ctx, query,
		b.ID, b.ReferenceID, b.ExperienceID, b.SlotID, b.BookingDate, b.TimeSlot, b.Quantity,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.Subtotal, b.Discount, b.CGST, b.SGST, b.TotalTax, b.Total,
		nullString(b.PromoCode), b.Status, b.PaymentStatus, nullString(b.IdempotencyKey), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *txRepo) GetBookingForUpdate(ctx context.Context, referenceID, email string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE reference_id = $1 AND customer_email = $2
              FOR UPDATE`

	return scanBooking(r.tx.QueryRowContext(ctx, query, referenceID, email))
}

func (r *txRepo) UpdateBookingStatus(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
              SET status = $2, payment_status = $3, updated_at = $4
              WHERE id = $1`

	res, err := r.tx.ExecContext(ctx, query, b.ID, b.Status, b.PaymentStatus, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return expectOne(res, domain.ErrBookingNotFound)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
