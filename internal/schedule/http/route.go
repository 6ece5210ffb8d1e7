package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	// Reads are public: the booking page greys out locked dates and
	// slots in the calendar.
	g.GET("/locked-dates", h.ListLockedDates)
	g.GET("/locked-time-slots", h.ListLockedSlots)

	// Only staff manage locks.
	staff := g.Group("")
	staff.Use(staffMiddleware)
	{
		staff.POST("/locked-dates", h.LockDate)
		staff.DELETE("/locked-dates", h.UnlockDate)
		staff.POST("/locked-time-slots", h.LockSlot)
		staff.DELETE("/locked-time-slots", h.UnlockSlot)
	}
}
