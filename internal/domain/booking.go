package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

const MaxQuantityPerBooking = 10

type Booking struct {
	ID             string          `json:"id"`
	ReferenceID    string          `json:"reference_id"`
	ExperienceID   string          `json:"experience_id"`
	SlotID         string          `json:"slot_id"`
	BookingDate    time.Time       `json:"booking_date"`
	TimeSlot       string          `json:"time_slot"`
	Quantity       int             `json:"quantity"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	Total          decimal.Decimal `json:"total"`
	PromoCode      *string         `json:"promo_code"`
	Status         BookingStatus   `json:"status"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CheckCancellable reports why a booking may not be cancelled at now.
func (b *Booking) CheckCancellable(now time.Time) error {
	switch b.Status {
	case BookingStatusCancelled:
		return ErrAlreadyCancelled
	case BookingStatusCompleted:
		return ErrCannotCancelCompleted
	}
	if b.BookingDate.Before(now) {
		return ErrPastBooking
	}
	return nil
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type CreateBookingInput struct {
	ExperienceID   string
	SlotID         string
	Quantity       int
	Customer       Customer
	PromoCode      string
	IdempotencyKey string
}

func (in *CreateBookingInput) Validate() error {
	switch {
	case in.ExperienceID == "":
		return fmt.Errorf("%w: experience id is required", ErrValidation)
	case in.SlotID == "":
		return fmt.Errorf("%w: slot id is required", ErrValidation)
	case in.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	case in.Quantity > MaxQuantityPerBooking:
		return fmt.Errorf("%w: maximum %d people per booking", ErrValidation, MaxQuantityPerBooking)
	case strings.TrimSpace(in.Customer.Name) == "":
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	case strings.TrimSpace(in.Customer.Phone) == "":
		return fmt.Errorf("%w: customer phone is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Customer.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return nil
}
