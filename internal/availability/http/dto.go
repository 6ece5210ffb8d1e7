package http

import (
	"github.com/amicinails/salon-booking-backend/internal/availability"
)

// SlotResponse mirrors the shape clients use to decide whether a slot
// can still be offered. It is advisory: the admission gate re-checks.
type SlotResponse struct {
	BookingCount int  `json:"booking_count"`
	IsLocked     bool `json:"is_locked"`
	Available    bool `json:"available"`
}

func NewSlotResponse(a *availability.SlotAvailability) SlotResponse {
	return SlotResponse{
		BookingCount: a.BookingCount,
		IsLocked:     a.IsLocked,
		Available:    a.Available,
	}
}

// DayResponse maps occupied slots to their booking counts.
type DayResponse struct {
	TimeSlotCounts map[string]int `json:"time_slot_counts"`
	TotalBookings  int            `json:"total_bookings"`
}

func NewDayResponse(a *availability.DayAvailability) DayResponse {
	counts := a.SlotCounts
	if counts == nil {
		counts = map[string]int{}
	}
	return DayResponse{
		TimeSlotCounts: counts,
		TotalBookings:  a.TotalBookings,
	}
}
