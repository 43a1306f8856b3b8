package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryKayaking  Category = "kayaking"
	CategorySunrise   Category = "sunrise"
	CategoryCruise    Category = "cruise"
	CategoryTrail     Category = "trail"
	CategoryJumping   Category = "jumping"
	CategoryAdventure Category = "adventure"
	CategoryBeach     Category = "beach"
	CategoryTrekking  Category = "trekking"
)

var Categories = []Category{
	CategoryKayaking, CategorySunrise, CategoryCruise, CategoryTrail,
	CategoryJumping, CategoryAdventure, CategoryBeach, CategoryTrekking,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Experience struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	Category      Category        `json:"category"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Image         string          `json:"image"`
	Duration      string          `json:"duration"`
	IncludedItems []string        `json:"included_items"`
	MaxGroupSize  int             `json:"max_group_size"`
	Active        bool            `json:"active"`
	TotalBookings int             `json:"total_bookings"`
	Slots         []Slot          `json:"slots"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Slot is one bookable date/time of an experience.
// BookedSpots stays within [0, AvailableSpots].
type Slot struct {
	ID             string          `json:"id"`
	ExperienceID   string          `json:"experience_id"`
	Date           time.Time       `json:"date"`
	TimeSlot       string          `json:"time_slot"`
	AvailableSpots int             `json:"available_spots"`
	BookedSpots    int             `json:"booked_spots"`
	Price          decimal.Decimal `json:"price"`
}

func (s *Slot) Remaining() int {
	if r := s.AvailableSpots - s.BookedSpots; r > 0 {
		return r
	}
	return 0
}

func (s *Slot) InPast(now time.Time) bool {
	return s.Date.Before(now)
}

// Available reports whether qty more spots fit into an upcoming slot.
func (s *Slot) Available(qty int, now time.Time) bool {
	return !s.InPast(now) && s.Remaining() >= qty
}

// Slot returns the slot with the given id, or nil.
func (e *Experience) Slot(slotID string) *Slot {
	for i := range e.Slots {
		if e.Slots[i].ID == slotID {
			return &e.Slots[i]
		}
	}
	return nil
}

// Reserve books qty spots on a slot. The caller must hold the experience lock.
func (e *Experience) Reserve(slotID string, qty int, now time.Time) (*Slot, error) {
	slot := e.Slot(slotID)
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.InPast(now) {
		return nil, ErrSlotInPast
	}
	if slot.AvailableSpots-slot.BookedSpots < qty {
		return nil, NewCapacityError(slot.AvailableSpots - slot.BookedSpots)
	}

	slot.BookedSpots += qty
	return slot, nil
}

// Release returns qty spots to a slot, never going below zero.
// The second result is false when the slot no longer exists.
func (e *Experience) Release(slotID string, qty int) (*Slot, bool) {
	slot := e.Slot(slotID)
	if slot == nil {
		return nil, false
	}

	slot.BookedSpots -= qty
	if slot.BookedSpots < 0 {
		slot.BookedSpots = 0
	}
	return slot, true
}

// UpcomingSlots returns the slots that have not started yet.
func (e *Experience) UpcomingSlots(now time.Time) []Slot {
	res := make([]Slot, 0, len(e.Slots))
	for _, s := range e.Slots {
		if !s.InPast(now) {
			res = append(res, s)
		}
	}
	return res
}

// ExperienceFilter narrows the catalog listing. Empty fields are ignored.
type ExperienceFilter struct {
	Category Category
	Location string
	Search   string
}

type SlotAvailability struct {
	Available      bool  `json:"available"`
	AvailableSpots int   `json:"available_spots"`
	Slot           *Slot `json:"slot,omitempty"`
}
