package http

import (
	"time"

	"github.com/amicinails/salon-booking-backend/internal/schedule"
)

type LockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type LockSlotRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

type LockedDateResponse struct {
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLockedDateResponse(ld *schedule.LockedDate) LockedDateResponse {
	return LockedDateResponse{
		Date:      ld.Date,
		Reason:    ld.Reason,
		CreatedAt: ld.CreatedAt,
	}
}

type LockedSlotResponse struct {
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLockedSlotResponse(ls *schedule.LockedSlot) LockedSlotResponse {
	return LockedSlotResponse{
		Date:      ls.Date,
		Time:      ls.Time,
		Reason:    ls.Reason,
		CreatedAt: ls.CreatedAt,
	}
}
