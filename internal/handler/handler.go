package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

const idempotencyHeader = "Idempotency-Key"

type ExperienceSvc interface {
	List(ctx context.Context, filter domain.ExperienceFilter) ([]*domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	SlotAvailability(ctx context.Context, experienceID, slotID string, quantity int) (*domain.SlotAvailability, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, referenceID, email string) (*domain.Booking, error)
	GetByReference(ctx context.Context, referenceID, email string) (*domain.Booking, error)
}

type PromoSvc interface {
	Validate(ctx context.Context, input domain.PromoPreviewInput) (*domain.PromoPreview, error)
	ListActive(ctx context.Context) ([]*domain.PromoCode, error)
}

type Handler struct {
	experienceService ExperienceSvc
	bookingService    BookingSvc
	promoService      PromoSvc
}

func NewHandler(experienceService ExperienceSvc, bookingService BookingSvc, promoService PromoSvc) *Handler {
	return &Handler{
		experienceService: experienceService,
		bookingService:    bookingService,
		promoService:      promoService,
	}
}

// Experiences
func (h *Handler) ListExperiences(c *ginext.Context) {
	filter := domain.ExperienceFilter{
		Category: domain.Category(strings.ToLower(c.Query("category"))),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}

	experiences, err := h.experienceService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.ToExperienceResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetExperience(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid experience id")
		return
	}

	experience, err := h.experienceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(experience))
}

func (h *Handler) SlotAvailability(c *ginext.Context) {
	experienceID := c.Param("id")
	if _, err := uuid.Parse(experienceID); err != nil {
		badRequest(c, "invalid experience id")
		return
	}
	slotID := c.Param("slotId")
	if _, err := uuid.Parse(slotID); err != nil {
		badRequest(c, "invalid slot id")
		return
	}

	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil || quantity < 1 || quantity > domain.MaxQuantityPerBooking {
		badRequest(c, "quantity must be between 1 and 10")
		return
	}

	availability, err := h.experienceService.SlotAvailability(c.Request.Context(), experienceID, slotID, quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	key := req.IdempotencyKey
	if key == "" {
		key = c.GetHeader(idempotencyHeader)
	}

	input := domain.CreateBookingInput{
		ExperienceID: req.ExperienceID,
		SlotID:       req.SlotID,
		Quantity:     req.Quantity,
		Customer: domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		PromoCode:      req.PromoCode,
		IdempotencyKey: key,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	booking, err := h.bookingService.GetByReference(c.Request.Context(), c.Param("referenceId"), email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("referenceId"), req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Promo codes

func (h *Handler) ValidatePromo(c *ginext.Context) {
	var req dto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.PromoPreviewInput{
		Code:          req.Code,
		Subtotal:      decimal.NewFromFloat(req.Subtotal),
		Category:      domain.Category(strings.ToLower(req.ExperienceCategory)),
		CustomerEmail: req.CustomerEmail,
	}

	preview, err := h.promoService.Validate(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromoValidationResponse(preview))
}

func (h *Handler) ListActivePromos(c *ginext.Context) {
	promos, err := h.promoService.ListActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ActivePromoResponse, 0, len(promos))
	for _, p := range promos {
		resp = append(resp, dto.ToActivePromoResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

var kindStatus = map[domain.Kind]int{
	domain.KindNotFound:         http.StatusNotFound,
	domain.KindValidation:       http.StatusBadRequest,
	domain.KindConflict:         http.StatusConflict,
	domain.KindCapacityExceeded: http.StatusConflict,
	domain.KindTemporal:         http.StatusUnprocessableEntity,
	domain.KindPolicyViolation:  http.StatusUnprocessableEntity,
	domain.KindIllegalState:     http.StatusConflict,
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal server error",
			Kind:  string(domain.KindInternal),
		})
		return
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: string(kind)})
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Kind: string(domain.KindValidation)})
}
