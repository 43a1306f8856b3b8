package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PromoRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPromoRepo(db *dbpg.DB) *PromoRepository {
	return &PromoRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PromoRepository) GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + `
              FROM promo_codes
              WHERE code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get promo code: %w", err)
	}

	return scanPromo(row)
}

func (r *PromoRepository) CountActiveBookingsByEmail(ctx context.Context, email string) (int, error) {
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

func (r *PromoRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + `
              FROM promo_codes
              WHERE is_active = TRUE
                AND valid_from <= $1
                AND valid_until >= $1
                AND (usage_limit IS NULL OR usage_limit = 0 OR used_count < usage_limit)
              ORDER BY valid_until`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("list active promo codes: %w", err)
	}
	defer rows.Close()

	var res []*domain.PromoCode
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
