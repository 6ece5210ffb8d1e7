package schedule

import (
	"net/http"
	"time"

	"github.com/amicinails/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrDateAlreadyLocked = apperror.New(http.StatusConflict, "date is already locked")
	ErrSlotAlreadyLocked = apperror.New(http.StatusConflict, "time slot is already locked")
	ErrDateLockNotFound  = apperror.New(http.StatusNotFound, "locked date not found")
	ErrSlotLockNotFound  = apperror.New(http.StatusNotFound, "locked time slot not found")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidSlot       = apperror.New(http.StatusBadRequest, "invalid time slot")
)

// LockedDate marks a whole calendar day as non-bookable, regardless of
// slot occupancy.
type LockedDate struct {
	Date      string
	Reason    string
	CreatedAt time.Time
}

// LockedSlot marks a single (date, time) pair as non-bookable. Date
// locks and slot locks are independent dimensions: locking a date does
// not create slot records, and unlocking a slot under a locked date has
// no visible effect until the date lock is removed.
type LockedSlot struct {
	Date      string
	Time      string
	Reason    string
	CreatedAt time.Time
}
