package http

import (
	"time"

	"github.com/amicinails/salon-booking-backend/internal/booking"
)

// CreateBookingRequest is the customer's submission. Services are
// referenced by catalog id; prices and totals are computed server-side.
type CreateBookingRequest struct {
	ID            string   `json:"id"`
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerPhone string   `json:"customer_phone" binding:"required"`
	CustomerEmail string   `json:"customer_email" binding:"required,email"`
	ServiceIDs    []string `json:"service_ids" binding:"required,min=1"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	Notes         string   `json:"notes"`
}

// UpdateBookingRequest updates the status only; all other booking
// fields are immutable after admission.
type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type BookedServiceResponse struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	NameVi    string `json:"name_vi"`
	NameDe    string `json:"name_de"`
	Price     int    `json:"price"`
	Duration  int    `json:"duration"`
}

type BookingResponse struct {
	ID            string                  `json:"id"`
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
	CustomerEmail string                  `json:"customer_email"`
	Services      []BookedServiceResponse `json:"services"`
	Date          string                  `json:"date"`
	Time          string                  `json:"time"`
	Notes         string                  `json:"notes"`
	Status        string                  `json:"status"`
	TotalPrice    int                     `json:"total_price"`
	TotalDuration int                     `json:"total_duration"`
	CreatedAt     time.Time               `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	services := make([]BookedServiceResponse, len(b.Services))
	for i, s := range b.Services {
		services[i] = BookedServiceResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name.EN,
			NameVi:    s.Name.VI,
			NameDe:    s.Name.DE,
			Price:     s.Price,
			Duration:  s.Duration,
		}
	}
	return BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Services:      services,
		Date:          b.Date,
		Time:          b.Time,
		Notes:         b.Notes,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
		TotalDuration: b.TotalDuration,
		CreatedAt:     b.CreatedAt,
	}
}
