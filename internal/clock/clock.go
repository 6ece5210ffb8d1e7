// Package clock centralizes all civil date/time reasoning on the salon's
// fixed GMT+1 offset, so that admission decisions never depend on the
// server's (or a client's) local timezone.
package clock

import (
	"fmt"
	"regexp"
	"time"
)

// The salon runs on a fixed UTC+1 offset, not an IANA zone. Daylight
// saving is intentionally ignored to match how the business publishes
// its hours.
var salonZone = time.FixedZone("GMT+1", 1*60*60)

// DateLayout is the civil date format used everywhere in the system.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Clock answers "what day is it" and "has this slot passed" questions
// in the salon's timezone. The time source is injectable so tests can
// pin the wall clock.
type Clock struct {
	now func() time.Time
}

// New returns a Clock backed by the real wall clock.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithNow returns a Clock backed by the provided time source.
func NewWithNow(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Now returns the current instant shifted into the salon timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(salonZone)
}

// Today returns the current civil date (YYYY-MM-DD) in the salon timezone.
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// IsPast reports whether date is strictly before today. Today itself is
// never past.
func (c *Clock) IsPast(date string) bool {
	return date < c.Today()
}

// IsSlotPassed reports whether the given slot's start time has already
// passed. It is only ever true for today's date: future dates are never
// passed, and past dates are handled by IsPast.
func (c *Clock) IsSlotPassed(date, slot string) bool {
	if date != c.Today() {
		return false
	}
	return slot < c.Now().Format("15:04")
}

// IsSunday reports whether the civil date falls on a Sunday. The weekday
// is computed from an instant anchored at noon in the salon timezone,
// keeping the result stable at day boundaries.
func (c *Clock) IsSunday(date string) bool {
	t, err := time.ParseInLocation(DateLayout+" 15:04", date+" 12:00", salonZone)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Sunday
}

// ParseDate validates that s is a well-formed civil date.
func ParseDate(s string) (string, error) {
	if !dateRe.MatchString(s) {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	if _, err := time.ParseInLocation(DateLayout, s, salonZone); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return s, nil
}
