package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	counts map[string]int // key: "date time"
}

func (f *fakeLedger) CountActiveAt(_ context.Context, date, slot string) (int, error) {
	return f.counts[date+" "+slot], nil
}

func (f *fakeLedger) CountActiveByDay(_ context.Context, date string) (map[string]int, error) {
	out := make(map[string]int)
	for key, c := range f.counts {
		if len(key) > 11 && key[:10] == date {
			out[key[11:]] = c
		}
	}
	return out, nil
}

type fakeLocks struct {
	locked map[string]bool
}

func (f *fakeLocks) IsSlotLocked(_ context.Context, date, slot string) (bool, error) {
	return f.locked[date+" "+slot], nil
}

func TestResolveSlot(t *testing.T) {
	ledger := &fakeLedger{counts: map[string]int{"2025-06-10 14:00": 2}}
	locks := &fakeLocks{locked: map[string]bool{}}
	svc := NewService(ledger, locks)

	got, err := svc.Resolve(context.Background(), "2025-06-10", "14:00")
	require.NoError(t, err)
	assert.Equal(t, 2, got.BookingCount)
	assert.False(t, got.IsLocked)
	assert.True(t, got.Available, "occupancy alone never closes a slot")
}

func TestResolveLockedSlotWithNoBookings(t *testing.T) {
	// Locks and occupancy are independent dimensions.
	ledger := &fakeLedger{counts: map[string]int{}}
	locks := &fakeLocks{locked: map[string]bool{"2025-06-10 09:00": true}}
	svc := NewService(ledger, locks)

	got, err := svc.Resolve(context.Background(), "2025-06-10", "09:00")
	require.NoError(t, err)
	assert.Zero(t, got.BookingCount)
	assert.True(t, got.IsLocked)
	assert.False(t, got.Available)
}

func TestResolveDay(t *testing.T) {
	ledger := &fakeLedger{counts: map[string]int{
		"2025-06-10 09:00": 1,
		"2025-06-10 14:00": 3,
		"2025-06-11 10:00": 5,
	}}
	svc := NewService(ledger, &fakeLocks{locked: map[string]bool{}})

	got, err := svc.ResolveDay(context.Background(), "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"09:00": 1, "14:00": 3}, got.SlotCounts)
	assert.Equal(t, 4, got.TotalBookings)
}

func TestResolveRejectsBadDate(t *testing.T) {
	svc := NewService(&fakeLedger{}, &fakeLocks{})

	_, err := svc.Resolve(context.Background(), "junk", "09:00")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.ResolveDay(context.Background(), "2025-6-1")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
