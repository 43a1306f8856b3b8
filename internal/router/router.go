package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListExperiences(c *ginext.Context)
	GetExperience(c *ginext.Context)
	SlotAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ValidatePromo(c *ginext.Context)
	ListActivePromos(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Experiences
		api.GET("/experiences", h.ListExperiences)
		api.GET("/experiences/:id", h.GetExperience)
		api.GET("/experiences/:id/slots/:slotId/availability", h.SlotAvailability)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:referenceId", h.GetBooking)
		api.PUT("/bookings/:referenceId/cancel", h.CancelBooking)

		// Promo codes
		api.POST("/promo/validate", h.ValidatePromo)
		api.GET("/promo/active", h.ListActivePromos)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
