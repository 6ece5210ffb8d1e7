package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Public: the booking page polls this while the customer picks a slot.
	g.GET("/bookings/check-availability", h.Check)
}
