package dto

import (
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

type ExperienceResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	Category      string         `json:"category"`
	Price         float64        `json:"price"`
	Image         string         `json:"image"`
	Duration      string         `json:"duration"`
	IncludedItems []string       `json:"includedItems"`
	MaxGroupSize  int            `json:"maxGroupSize"`
	TotalBookings int            `json:"totalBookings"`
	Slots         []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	TimeSlot       string  `json:"timeSlot"`
	AvailableSpots int     `json:"availableSpots"`
	BookedSpots    int     `json:"bookedSpots"`
	RemainingSpots int     `json:"remainingSpots"`
	Price          float64 `json:"price"`
}

type AvailabilityResponse struct {
	Available      bool          `json:"available"`
	AvailableSpots int           `json:"availableSpots"`
	Slot           *SlotResponse `json:"slot,omitempty"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	ReferenceID   string  `json:"referenceId"`
	ExperienceID  string  `json:"experienceId"`
	SlotID        string  `json:"slotId"`
	BookingDate   string  `json:"bookingDate"`
	TimeSlot      string  `json:"timeSlot"`
	Quantity      int     `json:"quantity"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	TotalTax      float64 `json:"totalTax"`
	Total         float64 `json:"total"`
	PromoCode     *string `json:"promoCode,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

type PromoValidationResponse struct {
	Code           string   `json:"code"`
	DiscountType   string   `json:"discountType"`
	DiscountValue  float64  `json:"discountValue"`
	MaxDiscount    *float64 `json:"maxDiscount,omitempty"`
	DiscountAmount float64  `json:"discountAmount"`
	Subtotal       float64  `json:"subtotal"`
	FinalAmount    float64  `json:"finalAmount"`
	Description    string   `json:"description"`
}

type ActivePromoResponse struct {
	Code              string   `json:"code"`
	Description       string   `json:"description"`
	MinOrderValue     *float64 `json:"minOrderValue,omitempty"`
	ValidUntil        string   `json:"validUntil"`
	FirstTimeUserOnly bool     `json:"firstTimeUserOnly"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func ToExperienceResponse(e *domain.Experience) ExperienceResponse {
	slots := make([]SlotResponse, 0, len(e.Slots))
	for i := range e.Slots {
		slots = append(slots, ToSlotResponse(&e.Slots[i]))
	}

	items := e.IncludedItems
	if items == nil {
		items = []string{}
	}

	return ExperienceResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		Category:      string(e.Category),
		Price:         e.BasePrice.InexactFloat64(),
		Image:         e.Image,
		Duration:      e.Duration,
		IncludedItems: items,
		MaxGroupSize:  e.MaxGroupSize,
		TotalBookings: e.TotalBookings,
		Slots:         slots,
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:             s.ID,
		Date:           s.Date.Format(time.RFC3339),
		TimeSlot:       s.TimeSlot,
		AvailableSpots: s.AvailableSpots,
		BookedSpots:    s.BookedSpots,
		RemainingSpots: s.Remaining(),
		Price:          s.Price.InexactFloat64(),
	}
}

func ToAvailabilityResponse(a *domain.SlotAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		Available:      a.Available,
		AvailableSpots: a.AvailableSpots,
	}
	if a.Slot != nil {
		slot := ToSlotResponse(a.Slot)
		resp.Slot = &slot
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ReferenceID:   b.ReferenceID,
		ExperienceID:  b.ExperienceID,
		SlotID:        b.SlotID,
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		TimeSlot:      b.TimeSlot,
		Quantity:      b.Quantity,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Subtotal:      b.Subtotal.InexactFloat64(),
		Discount:      b.Discount.InexactFloat64(),
		CGST:          b.CGST.InexactFloat64(),
		SGST:          b.SGST.InexactFloat64(),
		TotalTax:      b.TotalTax.InexactFloat64(),
		Total:         b.Total.InexactFloat64(),
		PromoCode:     b.PromoCode,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPromoValidationResponse(p *domain.PromoPreview) PromoValidationResponse {
	resp := PromoValidationResponse{
		Code:           p.Code,
		DiscountType:   string(p.DiscountType),
		DiscountValue:  p.DiscountValue.InexactFloat64(),
		DiscountAmount: p.DiscountAmount.InexactFloat64(),
		Subtotal:       p.Subtotal.InexactFloat64(),
		FinalAmount:    p.FinalAmount.InexactFloat64(),
		Description:    p.Description,
	}
	if p.MaxDiscount != nil {
		v := p.MaxDiscount.InexactFloat64()
		resp.MaxDiscount = &v
	}
	return resp
}

func ToActivePromoResponse(p *domain.PromoCode) ActivePromoResponse {
	resp := ActivePromoResponse{
		Code:              p.Code,
		Description:       "Get " + p.Description(),
		ValidUntil:        p.ValidUntil.Format(time.RFC3339),
		FirstTimeUserOnly: p.FirstTimeUserOnly,
	}
	if p.MinOrderValue != nil && p.MinOrderValue.IsPositive() {
		v := p.MinOrderValue.InexactFloat64()
		resp.MinOrderValue = &v
	}
	return resp
}
