package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed returns a clock pinned to the given UTC instant.
func fixed(t time.Time) *Clock {
	return NewWithNow(func() time.Time { return t })
}

func TestTodayUsesSalonOffset(t *testing.T) {
	// 23:30 UTC is already 00:30 the next day in GMT+1.
	c := fixed(time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-11", c.Today())

	c = fixed(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-10", c.Today())
}

func TestIsPast(t *testing.T) {
	c := fixed(time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC))

	assert.True(t, c.IsPast("2025-06-09"))
	assert.False(t, c.IsPast("2025-06-10"), "today is never past")
	assert.False(t, c.IsPast("2025-06-11"))
}

func TestIsSlotPassed(t *testing.T) {
	// 13:00 UTC = 14:00 salon time on 2025-06-10.
	c := fixed(time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	assert.False(t, c.IsSlotPassed("2025-06-11", "09:00"), "future date never passed")
	assert.False(t, c.IsSlotPassed("2025-06-09", "09:00"), "other dates never passed")
	assert.True(t, c.IsSlotPassed("2025-06-10", "13:30"))
	assert.False(t, c.IsSlotPassed("2025-06-10", "14:00"), "slot starting now has not passed")
	assert.False(t, c.IsSlotPassed("2025-06-10", "14:30"))
}

func TestIsSunday(t *testing.T) {
	c := New()

	// 2025-06-08 is a known Sunday.
	assert.True(t, c.IsSunday("2025-06-08"))
	assert.False(t, c.IsSunday("2025-06-07"), "Saturday")
	assert.False(t, c.IsSunday("2025-06-09"), "Monday")

	for _, d := range []string{"2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13"} {
		assert.False(t, c.IsSunday(d), d)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", d)

	for _, bad := range []string{"", "25-12-2025", "2025/12/25", "2025-13-01", "2025-02-30", "2025-12-25T10:00"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
