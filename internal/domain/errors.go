package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExperienceNotFound = errors.New("experience not found or not available")
	ErrSlotNotFound       = errors.New("slot not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPromoNotFound      = errors.New("invalid promo code")
)

var (
	ErrInsufficientCapacity    = errors.New("insufficient capacity")
	ErrAlreadyBooked           = errors.New("you have already booked this time slot")
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
	ErrRequestInProgress       = errors.New("a request with this idempotency key is already in progress")
	ErrReferenceCollision      = errors.New("booking reference collision")
)

var (
	ErrSlotInPast       = errors.New("cannot book slots in the past")
	ErrPromoNotYetValid = errors.New("promo code is not yet valid")
	ErrPromoExpired     = errors.New("promo code has expired")
)

var (
	ErrPromoUsageLimitReached = errors.New("promo code usage limit has been reached")
	ErrBelowMinimumOrder      = errors.New("minimum order value not met for this promo code")
	ErrCategoryNotEligible    = errors.New("this promo code is not applicable for this experience category")
	ErrNotFirstTimeUser       = errors.New("this promo code is only valid for first-time users")
)

var (
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrCannotCancelCompleted = errors.New("cannot cancel a completed booking")
	ErrPastBooking           = errors.New("cannot cancel past bookings")
)

var (
	ErrValidation = errors.New("validation error")
)

// CapacityError reports how many spots were left when a reservation did not fit.
type CapacityError struct {
	Remaining int
}

func NewCapacityError(remaining int) *CapacityError {
	if remaining < 0 {
		remaining = 0
	}
	return &CapacityError{Remaining: remaining}
}

func (e *CapacityError) Error() string {
	if e.Remaining == 1 {
		return "Only 1 spot available"
	}
	return fmt.Sprintf("Only %d spots available", e.Remaining)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// Kind is the machine-checkable class of a domain error.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindTemporal         Kind = "temporal"
	KindPolicyViolation  Kind = "policy_violation"
	KindIllegalState     Kind = "illegal_state"
	KindInternal         Kind = "internal"
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindNotFound, []error{ErrExperienceNotFound, ErrSlotNotFound, ErrBookingNotFound, ErrPromoNotFound}},
	{KindCapacityExceeded, []error{ErrInsufficientCapacity}},
	{KindConflict, []error{ErrAlreadyBooked, ErrDuplicateIdempotencyKey, ErrRequestInProgress}},
	{KindTemporal, []error{ErrSlotInPast, ErrPromoNotYetValid, ErrPromoExpired}},
	{KindPolicyViolation, []error{ErrPromoUsageLimitReached, ErrBelowMinimumOrder, ErrCategoryNotEligible, ErrNotFirstTimeUser}},
	{KindIllegalState, []error{ErrAlreadyCancelled, ErrCannotCancelCompleted, ErrPastBooking}},
	{KindValidation, []error{ErrValidation}},
}

// KindOf classifies err. Anything unknown is KindInternal.
func KindOf(err error) Kind {
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return KindInternal
}
