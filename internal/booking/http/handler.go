package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/auth"
	"github.com/amicinails/salon-booking-backend/internal/booking"
	"github.com/amicinails/salon-booking-backend/internal/pkg/request"
	"github.com/amicinails/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ID:            req.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, booking.ErrNotFound)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	filter := booking.Filter{
		Date:   c.Query("date"),
		Status: booking.Status(c.Query("status")),
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, booking.ErrNotFound)
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, booking.ErrInvalidStatus)
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, booking.Status(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	log.Printf("staff %s set booking %s to %s", auth.GetStaffUsername(c), b.ID, b.Status)
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, booking.ErrNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	log.Printf("staff %s deleted booking %s", auth.GetStaffUsername(c), uri.ID)
	c.Status(http.StatusNoContent)
}
