package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	experienceColumns = `id, title, description, location, category, base_price, image, duration,
	       included_items, max_group_size, is_active, total_bookings, created_at, updated_at`

	slotColumns = `id, experience_id, date, time_slot, available_spots, booked_spots, price`

	promoColumns = `id, code, discount_type, discount_value, min_order_value, max_discount,
	       valid_from, valid_until, usage_limit, used_count, applicable_categories,
	       first_time_user_only, is_active, created_at, updated_at`

	bookingColumns = `id, reference_id, experience_id, slot_id, booking_date, time_slot, quantity,
	       customer_name, customer_email, customer_phone,
	       subtotal, discount, cgst, sgst, total_tax, total,
	       promo_code, status, payment_status, idempotency_key, created_at, updated_at`
)

const (
	countActiveByEmailQuery = `SELECT COUNT(*) FROM bookings
              WHERE customer_email = $1 AND status <> $2`

	hasActiveForSlotQuery = `SELECT EXISTS (
                  SELECT 1 FROM bookings
                  WHERE customer_email = $1 AND experience_id = $2 AND slot_id = $3 AND status <> $4
              )`
)

// Unique-констрейнты таблицы bookings.
const (
	referenceConstraint   = "bookings_reference_id_key"
	idempotencyConstraint = "bookings_idempotency_key_key"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanExperience(s scanner) (*domain.Experience, error) {
	var (
		e     domain.Experience
		items pq.StringArray
	)
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &e.BasePrice, &e.Image, &e.Duration,
		&items, &e.MaxGroupSize, &e.Active, &e.TotalBookings, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}
	e.IncludedItems = items
	return &e, nil
}

func scanSlot(s scanner) (domain.Slot, error) {
	var sl domain.Slot
	if err := s.Scan(&sl.ID, &sl.ExperienceID, &sl.Date, &sl.TimeSlot, &sl.AvailableSpots, &sl.BookedSpots, &sl.Price); err != nil {
		return sl, fmt.Errorf("scan slot: %w", err)
	}
	return sl, nil
}

func scanPromo(s scanner) (*domain.PromoCode, error) {
	var (
		p          domain.PromoCode
		minOrder   decimal.NullDecimal
		maxDisc    decimal.NullDecimal
		usageLimit sql.NullInt64
		categories pq.StringArray
	)
	err := s.Scan(
		&p.ID, &p.Code, &p.DiscountType, &p.DiscountValue, &minOrder, &maxDisc,
		&p.ValidFrom, &p.ValidUntil, &usageLimit, &p.UsedCount, &categories,
		&p.FirstTimeUserOnly, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("scan promo code: %w", err)
	}

	if minOrder.Valid {
		p.MinOrderValue = &minOrder.Decimal
	}
	if maxDisc.Valid {
		p.MaxDiscount = &maxDisc.Decimal
	}
	if usageLimit.Valid {
		limit := int(usageLimit.Int64)
		p.UsageLimit = &limit
	}
	for _, c := range categories {
		p.ApplicableCategories = append(p.ApplicableCategories, domain.Category(c))
	}
	return &p, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b              domain.Booking
		promoCode      sql.NullString
		idempotencyKey sql.NullString
	)
	err := s.Scan(
		&b.ID, &b.ReferenceID, &b.ExperienceID, &b.SlotID, &b.BookingDate, &b.TimeSlot, &b.Quantity,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.Subtotal, &b.Discount, &b.CGST, &b.SGST, &b.TotalTax, &b.Total,
		&promoCode, &b.Status, &b.PaymentStatus, &idempotencyKey, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if promoCode.Valid {
		b.PromoCode = &promoCode.String
	}
	if idempotencyKey.Valid {
		b.IdempotencyKey = &idempotencyKey.String
	}
	return &b, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// mapUniqueViolation переводит 23505 по bookings в доменные ошибки.
func mapUniqueViolation(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	switch pgErr.Constraint {
	case referenceConstraint:
		return domain.ErrReferenceCollision
	case idempotencyConstraint:
		return domain.ErrDuplicateIdempotencyKey
	default:
		return err
	}
}
