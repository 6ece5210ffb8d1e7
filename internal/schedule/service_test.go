package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo mirrors the keyed-record semantics of the Postgres
// repository: unique keys yield the AlreadyLocked errors, deleting an
// absent key yields the NotFound errors.
type memoryRepo struct {
	dates map[string]*LockedDate
	slots map[string]*LockedSlot
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		dates: make(map[string]*LockedDate),
		slots: make(map[string]*LockedSlot),
	}
}

func (m *memoryRepo) InsertDateLock(_ context.Context, ld *LockedDate) error {
	if _, ok := m.dates[ld.Date]; ok {
		return ErrDateAlreadyLocked
	}
	ld.CreatedAt = time.Now()
	m.dates[ld.Date] = ld
	return nil
}

func (m *memoryRepo) DeleteDateLock(_ context.Context, date string) error {
	if _, ok := m.dates[date]; !ok {
		return ErrDateLockNotFound
	}
	delete(m.dates, date)
	return nil
}

func (m *memoryRepo) DateLocked(_ context.Context, date string) (bool, error) {
	_, ok := m.dates[date]
	return ok, nil
}

func (m *memoryRepo) ListDateLocks(_ context.Context) ([]*LockedDate, error) {
	var out []*LockedDate
	for _, ld := range m.dates {
		out = append(out, ld)
	}
	return out, nil
}

func (m *memoryRepo) InsertSlotLock(_ context.Context, ls *LockedSlot) error {
	key := ls.Date + " " + ls.Time
	if _, ok := m.slots[key]; ok {
		return ErrSlotAlreadyLocked
	}
	ls.CreatedAt = time.Now()
	m.slots[key] = ls
	return nil
}

func (m *memoryRepo) DeleteSlotLock(_ context.Context, date, slot string) error {
	key := date + " " + slot
	if _, ok := m.slots[key]; !ok {
		return ErrSlotLockNotFound
	}
	delete(m.slots, key)
	return nil
}

func (m *memoryRepo) SlotLocked(_ context.Context, date, slot string) (bool, error) {
	_, ok := m.slots[date+" "+slot]
	return ok, nil
}

func (m *memoryRepo) ListSlotLocks(_ context.Context, date string) ([]*LockedSlot, error) {
	var out []*LockedSlot
	for _, ls := range m.slots {
		if date == "" || ls.Date == date {
			out = append(out, ls)
		}
	}
	return out, nil
}

func TestLockDate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	ld, err := svc.LockDate(ctx, "2025-12-25", "holiday")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", ld.Date)
	assert.Equal(t, "holiday", ld.Reason)

	locked, err := svc.IsDateLocked(ctx, "2025-12-25")
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = svc.LockDate(ctx, "2025-12-25", "again")
	assert.ErrorIs(t, err, ErrDateAlreadyLocked)

	_, err = svc.LockDate(ctx, "25.12.2025", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUnlockDate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.LockDate(ctx, "2025-12-25", "")
	require.NoError(t, err)

	require.NoError(t, svc.UnlockDate(ctx, "2025-12-25"))

	locked, err := svc.IsDateLocked(ctx, "2025-12-25")
	require.NoError(t, err)
	assert.False(t, locked)

	// Second unlock fails, and the first unlock stays effective.
	assert.ErrorIs(t, svc.UnlockDate(ctx, "2025-12-25"), ErrDateLockNotFound)
	locked, err = svc.IsDateLocked(ctx, "2025-12-25")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestLockSlot(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	ls, err := svc.LockSlot(ctx, "2025-06-10", "14:00", "staff meeting")
	require.NoError(t, err)
	assert.Equal(t, "14:00", ls.Time)

	locked, err := svc.IsSlotLocked(ctx, "2025-06-10", "14:00")
	require.NoError(t, err)
	assert.True(t, locked)

	// Other slots on the same date are unaffected.
	locked, err = svc.IsSlotLocked(ctx, "2025-06-10", "14:30")
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = svc.LockSlot(ctx, "2025-06-10", "14:00", "")
	assert.ErrorIs(t, err, ErrSlotAlreadyLocked)

	_, err = svc.LockSlot(ctx, "2025-06-10", "14:15", "")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestUnlockSlotIdempotenceSemantics(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.LockSlot(ctx, "2025-06-10", "14:00", "")
	require.NoError(t, err)

	require.NoError(t, svc.UnlockSlot(ctx, "2025-06-10", "14:00"))
	assert.ErrorIs(t, svc.UnlockSlot(ctx, "2025-06-10", "14:00"), ErrSlotLockNotFound)

	locked, err := svc.IsSlotLocked(ctx, "2025-06-10", "14:00")
	require.NoError(t, err)
	assert.False(t, locked, "failed second unlock does not reverse the first")
}

func TestDateAndSlotLocksAreIndependent(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.LockDate(ctx, "2025-06-10", "")
	require.NoError(t, err)

	// Locking a date creates no per-slot records.
	locked, err := svc.IsSlotLocked(ctx, "2025-06-10", "14:00")
	require.NoError(t, err)
	assert.False(t, locked)

	slots, err := svc.ListLockedSlots(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListLockedSlotsFiltersByDate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.LockSlot(ctx, "2025-06-10", "14:00", "")
	require.NoError(t, err)
	_, err = svc.LockSlot(ctx, "2025-06-11", "09:00", "")
	require.NoError(t, err)

	slots, err := svc.ListLockedSlots(ctx, "2025-06-10")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "14:00", slots[0].Time)

	all, err := svc.ListLockedSlots(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListLockedSlots(ctx, "bad-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
