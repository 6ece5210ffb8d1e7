// Package availability computes the read-only view of what is bookable.
// It is a convenience for clients: by the time a customer submits, this
// view may be stale, so the booking admission gate always re-checks
// lock state itself.
package availability

import (
	"context"
	"net/http"

	"github.com/amicinails/salon-booking-backend/internal/clock"
	"github.com/amicinails/salon-booking-backend/internal/pkg/apperror"
)

var ErrInvalidDate = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")

// Ledger is the subset of the booking store availability reads from.
type Ledger interface {
	CountActiveAt(ctx context.Context, date, slot string) (int, error)
	CountActiveByDay(ctx context.Context, date string) (map[string]int, error)
}

// Locks is the subset of the lock registry availability reads from.
type Locks interface {
	IsSlotLocked(ctx context.Context, date, slot string) (bool, error)
}

// SlotAvailability describes one (date, time) slot. BookingCount is
// informational: the salon runs several chairs, so occupancy does not
// cap admission. Available reflects lock state only.
type SlotAvailability struct {
	BookingCount int
	IsLocked     bool
	Available    bool
}

// DayAvailability maps each slot with at least one active booking to
// its count. Lock state is queried per slot, not folded in here.
type DayAvailability struct {
	SlotCounts    map[string]int
	TotalBookings int
}

type Service interface {
	Resolve(ctx context.Context, date, slot string) (*SlotAvailability, error)
	ResolveDay(ctx context.Context, date string) (*DayAvailability, error)
}

type service struct {
	ledger Ledger
	locks  Locks
}

func NewService(ledger Ledger, locks Locks) Service {
	return &service{ledger: ledger, locks: locks}
}

func (s *service) Resolve(ctx context.Context, date, slot string) (*SlotAvailability, error) {
	if _, err := clock.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	count, err := s.ledger.CountActiveAt(ctx, date, slot)
	if err != nil {
		return nil, err
	}
	locked, err := s.locks.IsSlotLocked(ctx, date, slot)
	if err != nil {
		return nil, err
	}

	return &SlotAvailability{
		BookingCount: count,
		IsLocked:     locked,
		Available:    !locked,
	}, nil
}

func (s *service) ResolveDay(ctx context.Context, date string) (*DayAvailability, error) {
	if _, err := clock.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	counts, err := s.ledger.CountActiveByDay(ctx, date)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return &DayAvailability{SlotCounts: counts, TotalBookings: total}, nil
}
