package booking

import (
	"net/http"
	"time"

	"github.com/amicinails/salon-booking-backend/internal/catalog"
	"github.com/amicinails/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "booking must have customer name, phone, and email")
	ErrServicesRequired = apperror.New(http.StatusBadRequest, "at least one service must be selected")
	ErrUnknownService   = apperror.New(http.StatusBadRequest, "unknown service selected")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidSlot      = apperror.New(http.StatusBadRequest, "invalid time slot")
	ErrDatePast         = apperror.New(http.StatusBadRequest, "cannot book a date in the past")
	ErrSlotPassed       = apperror.New(http.StatusBadRequest, "this time slot has already passed")
	ErrSundayClosed     = apperror.New(http.StatusBadRequest, "the salon is closed on Sundays")
	ErrDateLocked       = apperror.New(http.StatusConflict, "booking is not available for this date")
	ErrSlotLocked       = apperror.New(http.StatusConflict, "this time slot is currently locked")
	ErrDuplicateID      = apperror.New(http.StatusConflict, "a booking with this id already exists")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BookedService is the priced snapshot of a catalog entry at booking
// time. Totals are computed from these snapshots once and stored, so
// later catalog price changes never alter past bookings.
type BookedService struct {
	ServiceID string       `json:"service_id"`
	Name      catalog.Name `json:"name"`
	Price     int          `json:"price"`
	Duration  int          `json:"duration"`
}

type Booking struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Services      []BookedService
	Date          string // civil date YYYY-MM-DD in the salon timezone
	Time          string // slot label from the fixed grid
	Notes         string
	Status        Status
	TotalPrice    int
	TotalDuration int // minutes
	CreatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Date   string
	Status Status
}
