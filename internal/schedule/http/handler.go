package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/pkg/response"
	"github.com/amicinails/salon-booking-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListLockedDates(c *gin.Context) {
	locks, err := h.service.ListLockedDates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LockedDateResponse, len(locks))
	for i, ld := range locks {
		items[i] = NewLockedDateResponse(ld)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) LockDate(c *gin.Context) {
	var req LockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, schedule.ErrInvalidDate)
		return
	}

	ld, err := h.service.LockDate(c.Request.Context(), req.Date, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewLockedDateResponse(ld))
}

func (h *Handler) UnlockDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	if err := h.service.UnlockDate(c.Request.Context(), date); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "locked date removed"})
}

func (h *Handler) ListLockedSlots(c *gin.Context) {
	locks, err := h.service.ListLockedSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LockedSlotResponse, len(locks))
	for i, ls := range locks {
		items[i] = NewLockedSlotResponse(ls)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) LockSlot(c *gin.Context) {
	var req LockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, schedule.ErrInvalidSlot)
		return
	}

	ls, err := h.service.LockSlot(c.Request.Context(), req.Date, req.Time, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewLockedSlotResponse(ls))
}

func (h *Handler) UnlockSlot(c *gin.Context) {
	date, slot := c.Query("date"), c.Query("time")
	if date == "" || slot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time parameters are required"})
		return
	}

	if err := h.service.UnlockSlot(c.Request.Context(), date, slot); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "locked time slot removed"})
}
