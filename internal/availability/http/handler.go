package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/availability"
	"github.com/amicinails/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Check answers availability queries. With a time parameter it
// describes that single slot; without one it summarizes the whole day.
func (h *Handler) Check(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	if slot := c.Query("time"); slot != "" {
		result, err := h.service.Resolve(c.Request.Context(), date, slot)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, NewSlotResponse(result))
		return
	}

	result, err := h.service.ResolveDay(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewDayResponse(result))
}
