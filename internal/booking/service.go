package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amicinails/salon-booking-backend/internal/catalog"
	"github.com/amicinails/salon-booking-backend/internal/clock"
	"github.com/amicinails/salon-booking-backend/internal/timeslot"
)

// CreateRequest carries a customer's booking submission. ID is optional:
// clients may bring their own opaque token, otherwise one is generated.
type CreateRequest struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceIDs    []string
	Date          string
	Time          string
	Notes         string
}

// Notifier receives fire-and-forget events about newly admitted
// bookings. Implementations must not block the caller; failures are
// theirs to log and never affect the admission decision.
type Notifier interface {
	BookingCreated(b *Booking)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(*Booking) {}

// Service is the booking ledger together with its admission gate.
// Create is the only way a booking enters the ledger.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	catalog  *catalog.Catalog
	clock    *clock.Clock
	notifier Notifier
}

func NewService(repo Repository, cat *catalog.Catalog, clk *clock.Clock, notifier Notifier) Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &service{
		repo:     repo,
		catalog:  cat,
		clock:    clk,
		notifier: notifier,
	}
}

// Create is the admission gate. All input validation happens before any
// shared state is touched; the lock re-checks and the insert are then a
// single atomic decision inside the repository, so a stale client view
// of availability can never produce a booking against a locked date or
// slot.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, ErrInvalidInput
	}
	if len(req.ServiceIDs) == 0 {
		return nil, ErrServicesRequired
	}
	if _, err := clock.ParseDate(req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if !timeslot.Valid(req.Time) {
		return nil, ErrInvalidSlot
	}
	if s.clock.IsSunday(req.Date) {
		return nil, ErrSundayClosed
	}
	if s.clock.IsPast(req.Date) {
		return nil, ErrDatePast
	}
	if s.clock.IsSlotPassed(req.Date, req.Time) {
		return nil, ErrSlotPassed
	}

	// Services are resolved against the catalog and their prices
	// snapshotted server-side. The client never dictates prices.
	services := make([]BookedService, 0, len(req.ServiceIDs))
	totalPrice, totalDuration := 0, 0
	for _, id := range req.ServiceIDs {
		entry, err := s.catalog.Get(id)
		if err != nil {
			return nil, ErrUnknownService
		}
		services = append(services, BookedService{
			ServiceID: entry.ID,
			Name:      entry.Name,
			Price:     entry.Price,
			Duration:  entry.Duration,
		})
		totalPrice += entry.Price
		totalDuration += entry.Duration
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	b := &Booking{
		ID:            id,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Services:      services,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		Status:        StatusPending,
		TotalPrice:    totalPrice,
		TotalDuration: totalDuration,
	}

	if err := s.repo.CreateAdmitted(ctx, b); err != nil {
		return nil, err
	}

	// Best effort: staff notification must never fail or delay the
	// booking itself.
	s.notifier.BookingCreated(b)

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus sets a booking's status. Any known status may be set
// from any other: staff corrections (e.g. un-cancelling after a phone
// call) are legitimate, so no transition graph is enforced.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
