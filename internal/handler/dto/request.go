package dto

type CreateBookingRequest struct {
	ExperienceID   string `json:"experienceId" binding:"required,uuid"`
	SlotID         string `json:"slotId" binding:"required,uuid"`
	Quantity       int    `json:"quantity" binding:"required,min=1,max=10"`
	CustomerName   string `json:"customerName" binding:"required,min=2,max=100"`
	CustomerEmail  string `json:"customerEmail" binding:"required,email"`
	CustomerPhone  string `json:"customerPhone" binding:"required,min=10,max=15"`
	PromoCode      string `json:"promoCode" binding:"omitempty,max=32"`
	IdempotencyKey string `json:"idempotencyKey" binding:"omitempty,max=128"`
}

type CancelBookingRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ValidatePromoRequest struct {
	Code               string  `json:"code" binding:"required,max=32"`
	Subtotal           float64 `json:"subtotal" binding:"gte=0"`
	ExperienceCategory string  `json:"experienceCategory"`
	CustomerEmail      string  `json:"customerEmail" binding:"omitempty,email"`
}
