package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/pricing"
	"github.com/Allen-Pinto/Highway-Delite/internal/promo"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

const defaultReferenceAttempts = 3

type BookingService struct {
	store             ports.Store
	bookingRepo       ports.BookingRepo
	locker            ports.IdempotencyLocker
	notifier          ports.BookingNotifier
	referenceAttempts int
	logger            logger.Logger
	now               func() time.Time
}

func NewBookingService(
	store ports.Store,
	bookingRepo ports.BookingRepo,
	locker ports.IdempotencyLocker,
	notifier ports.BookingNotifier,
	referenceAttempts int,
	logger logger.Logger,
) *BookingService {
	if referenceAttempts < 1 {
		referenceAttempts = defaultReferenceAttempts
	}
	return &BookingService{
		store:             store,
		bookingRepo:       bookingRepo,
		locker:            locker,
		notifier:          notifier,
		referenceAttempts: referenceAttempts,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Email = strings.ToLower(strings.TrimSpace(in.Customer.Email))
	in.Customer.Phone = strings.TrimSpace(in.Customer.Phone)
	in.PromoCode = domain.NormalizeCode(in.PromoCode)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)

	// повтор с известным ключом отдает сохраненную бронь без повторной валидации
	if in.IdempotencyKey != "" {
		existing, err := s.findByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		release, err := s.acquire(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		defer release()

		// пока ждали блокировку, победитель мог уже закоммитить
		existing, err := s.findByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	booked, err := s.bookingRepo.HasActiveBookingForSlot(ctx, in.Customer.Email, in.ExperienceID, in.SlotID)
	if err != nil {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
	if booked {
		return s.replayOr(ctx, in.IdempotencyKey, domain.ErrAlreadyBooked)
	}

	var (
		booking    *domain.Booking
		experience *domain.Experience
	)
	for attempt := 1; ; attempt++ {
		booking, experience, err = s.createInTx(ctx, in)
		if err == nil {
			break
		}

		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) || errors.Is(err, domain.ErrAlreadyBooked) {
			return s.replayOr(ctx, in.IdempotencyKey, err)
		}
		if errors.Is(err, domain.ErrReferenceCollision) && attempt < s.referenceAttempts {
			s.logger.Warn("booking reference collision, retrying",
				logger.Int("attempt", attempt),
			)
			continue
		}
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID),
		logger.String("reference_id", booking.ReferenceID),
		logger.String("experience_id", booking.ExperienceID),
		logger.String("slot_id", booking.SlotID),
		logger.Int("quantity", booking.Quantity),
		logger.String("total", booking.Total.String()),
		logger.Any("promo_code", booking.PromoCode),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, experience)

	return booking, nil
}

func (s *BookingService) createInTx(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, *domain.Experience, error) {
	var (
		booking    *domain.Booking
		experience *domain.Experience
	)

	err := s.store.RunInTx(ctx, func(tx ports.Tx) error {
		now := s.now().UTC()

		exp, err := tx.GetExperienceForUpdate(ctx, in.ExperienceID)
		if err != nil {
			return err
		}
		if !exp.Active {
			return domain.ErrExperienceNotFound
		}

		// повторная проверка уже под блокировкой experience
		booked, err := tx.HasActiveBookingForSlot(ctx, in.Customer.Email, in.ExperienceID, in.SlotID)
		if err != nil {
			return fmt.Errorf("check existing booking: %w", err)
		}
		if booked {
			return domain.ErrAlreadyBooked
		}

		slot, err := exp.Reserve(in.SlotID, in.Quantity, now)
		if err != nil {
			return err
		}

		discount := decimal.Zero
		var applied *domain.PromoCode
		if in.PromoCode != "" {
			res, err := promo.Validate(ctx, tx, promo.Request{
				Code:          in.PromoCode,
				Subtotal:      pricing.Subtotal(slot.Price, in.Quantity),
				Category:      exp.Category,
				CustomerEmail: in.Customer.Email,
			}, now)
			if err != nil {
				return err
			}
			discount = res.DiscountAmount
			applied = res.Promo
		}

		quote := pricing.NewQuote(slot.Price, in.Quantity, discount)

		referenceID, err := newReferenceID()
		if err != nil {
			return err
		}

		b := &domain.Booking{
			ID:            uuid.New().String(),
			ReferenceID:   referenceID,
			ExperienceID:  exp.ID,
			SlotID:        slot.ID,
			BookingDate:   slot.Date,
			TimeSlot:      slot.TimeSlot,
			Quantity:      in.Quantity,
			CustomerName:  in.Customer.Name,
			CustomerEmail: in.Customer.Email,
			CustomerPhone: in.Customer.Phone,
			Subtotal:      quote.Subtotal,
			Discount:      quote.Discount,
			CGST:          quote.Tax.CGST,
			SGST:          quote.Tax.SGST,
			TotalTax:      quote.Tax.Total,
			Total:         quote.Total,
			Status:        domain.BookingStatusConfirmed,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if applied != nil {
			code := applied.Code
			b.PromoCode = &code
		}
		if in.IdempotencyKey != "" {
			key := in.IdempotencyKey
			b.IdempotencyKey = &key
		}

		if err = tx.UpdateSlotBookedSpots(ctx, slot.ID, slot.BookedSpots); err != nil {
			return fmt.Errorf("reserve spots: %w", err)
		}
		if err = tx.InsertBooking(ctx, b); err != nil {
			return err
		}
		if applied != nil {
			if err = tx.IncrementPromoUsage(ctx, applied.ID); err != nil {
				return fmt.Errorf("increment promo usage: %w", err)
			}
		}
		if err = tx.IncrementTotalBookings(ctx, exp.ID); err != nil {
			return fmt.Errorf("increment total bookings: %w", err)
		}

		exp.TotalBookings++
		booking, experience = b, exp
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return booking, experience, nil
}

func (s *BookingService) Cancel(ctx context.Context, referenceID, email string) (*domain.Booking, error) {
	referenceID = strings.ToUpper(strings.TrimSpace(referenceID))
	email = strings.ToLower(strings.TrimSpace(email))
	if referenceID == "" || email == "" {
		return nil, fmt.Errorf("%w: reference id and email are required", domain.ErrValidation)
	}

	var (
		booking    *domain.Booking
		experience *domain.Experience
	)

	err := s.store.RunInTx(ctx, func(tx ports.Tx) error {
		now := s.now().UTC()

		b, err := tx.GetBookingForUpdate(ctx, referenceID, email)
		if err != nil {
			return err
		}
		if err = b.CheckCancellable(now); err != nil {
			return err
		}

		b.Status = domain.BookingStatusCancelled
		b.PaymentStatus = domain.PaymentStatusRefunded
		b.UpdatedAt = now
		if err = tx.UpdateBookingStatus(ctx, b); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		// места возвращаем, счетчик промокода не трогаем
		exp, err := tx.GetExperienceForUpdate(ctx, b.ExperienceID)
		switch {
		case errors.Is(err, domain.ErrExperienceNotFound):
			s.logger.Warn("experience for cancelled booking not found",
				logger.String("reference_id", b.ReferenceID),
				logger.String("experience_id", b.ExperienceID),
			)
		case err != nil:
			return err
		default:
			slot, ok := exp.Release(b.SlotID, b.Quantity)
			if !ok {
				s.logger.Warn("slot for cancelled booking not found",
					logger.String("reference_id", b.ReferenceID),
					logger.String("slot_id", b.SlotID),
				)
			} else if err = tx.UpdateSlotBookedSpots(ctx, slot.ID, slot.BookedSpots); err != nil {
				return fmt.Errorf("release spots: %w", err)
			}
			experience = exp
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("reference_id", booking.ReferenceID),
		logger.Int("quantity", booking.Quantity),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, experience)

	return booking, nil
}

func (s *BookingService) GetByReference(ctx context.Context, referenceID, email string) (*domain.Booking, error) {
	referenceID = strings.ToUpper(strings.TrimSpace(referenceID))
	email = strings.ToLower(strings.TrimSpace(email))
	if referenceID == "" || email == "" {
		return nil, fmt.Errorf("%w: reference id and email are required", domain.ErrValidation)
	}

	return s.bookingRepo.GetByReference(ctx, referenceID, email)
}

func (s *BookingService) findByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByIdempotencyKey(ctx, key)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get booking by idempotency key: %w", err)
	}

	s.logger.Info("booking replayed by idempotency key",
		logger.String("reference_id", b.ReferenceID),
	)
	return b, nil
}

// replayOr возвращает бронь-победителя по ключу, если параллельный запрос
// с тем же ключом успел ее создать, иначе исходную ошибку.
func (s *BookingService) replayOr(ctx context.Context, key string, cause error) (*domain.Booking, error) {
	if key == "" {
		return nil, cause
	}

	b, err := s.findByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, cause
	}
	return b, nil
}

// acquire берет in-flight блокировку ключа. Если Redis недоступен,
// запрос идет дальше: дубликат все равно поймает уникальный индекс.
func (s *BookingService) acquire(ctx context.Context, key string) (func(), error) {
	owner := uuid.New().String()

	ok, err := s.locker.Acquire(ctx, key, owner)
	if err != nil {
		s.logger.Warn("idempotency lock unavailable",
			logger.String("idempotency_key", key),
			logger.String("error", err.Error()),
		)
		return func() {}, nil
	}
	if !ok {
		return nil, domain.ErrRequestInProgress
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key, owner); err != nil {
			s.logger.Warn("failed to release idempotency lock",
				logger.String("idempotency_key", key),
				logger.String("error", err.Error()),
			)
		}
	}, nil
}
