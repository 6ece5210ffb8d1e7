package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// Customers create bookings without authenticating.
	group.POST("", h.Create)

	// Everything else is the staff admin surface.
	staff := group.Group("")
	staff.Use(staffMiddleware)
	{
		staff.GET("", h.List)
		staff.GET("/:id", h.Get)
		staff.PATCH("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
	}
}
