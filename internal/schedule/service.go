package schedule

import (
	"context"

	"github.com/amicinails/salon-booking-backend/internal/clock"
	"github.com/amicinails/salon-booking-backend/internal/timeslot"
)

// Service is the lock registry: staff-managed records that make dates
// or individual slots non-bookable.
type Service interface {
	LockDate(ctx context.Context, date, reason string) (*LockedDate, error)
	UnlockDate(ctx context.Context, date string) error
	LockSlot(ctx context.Context, date, slot, reason string) (*LockedSlot, error)
	UnlockSlot(ctx context.Context, date, slot string) error

	IsDateLocked(ctx context.Context, date string) (bool, error)
	IsSlotLocked(ctx context.Context, date, slot string) (bool, error)

	ListLockedDates(ctx context.Context) ([]*LockedDate, error)
	ListLockedSlots(ctx context.Context, date string) ([]*LockedSlot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LockDate(ctx context.Context, date, reason string) (*LockedDate, error) {
	if _, err := clock.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	ld := &LockedDate{Date: date, Reason: reason}
	if err := s.repo.InsertDateLock(ctx, ld); err != nil {
		return nil, err
	}
	return ld, nil
}

func (s *service) UnlockDate(ctx context.Context, date string) error {
	if _, err := clock.ParseDate(date); err != nil {
		return ErrInvalidDate
	}
	return s.repo.DeleteDateLock(ctx, date)
}

func (s *service) LockSlot(ctx context.Context, date, slot, reason string) (*LockedSlot, error) {
	if _, err := clock.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}
	if !timeslot.Valid(slot) {
		return nil, ErrInvalidSlot
	}

	ls := &LockedSlot{Date: date, Time: slot, Reason: reason}
	if err := s.repo.InsertSlotLock(ctx, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

func (s *service) UnlockSlot(ctx context.Context, date, slot string) error {
	if _, err := clock.ParseDate(date); err != nil {
		return ErrInvalidDate
	}
	if !timeslot.Valid(slot) {
		return ErrInvalidSlot
	}
	return s.repo.DeleteSlotLock(ctx, date, slot)
}

func (s *service) IsDateLocked(ctx context.Context, date string) (bool, error) {
	return s.repo.DateLocked(ctx, date)
}

func (s *service) IsSlotLocked(ctx context.Context, date, slot string) (bool, error) {
	return s.repo.SlotLocked(ctx, date, slot)
}

func (s *service) ListLockedDates(ctx context.Context) ([]*LockedDate, error) {
	return s.repo.ListDateLocks(ctx)
}

func (s *service) ListLockedSlots(ctx context.Context, date string) ([]*LockedSlot, error) {
	if date != "" {
		if _, err := clock.ParseDate(date); err != nil {
			return nil, ErrInvalidDate
		}
	}
	return s.repo.ListSlotLocks(ctx, date)
}
