package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amicinails/salon-booking-backend/internal/booking"
	"github.com/amicinails/salon-booking-backend/internal/catalog"
)

type fakeSink struct {
	mu   sync.Mutex
	sent []*booking.Booking
	err  error
	done chan struct{}
}

func newFakeSink(err error) *fakeSink {
	return &fakeSink{err: err, done: make(chan struct{}, 8)}
}

func (s *fakeSink) Name() string { return "fake" }

func (s *fakeSink) Send(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	s.sent = append(s.sent, b)
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *fakeSink) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("sink never received the event")
	}
}

func testBooking() *booking.Booking {
	return &booking.Booking{
		ID:            "b-1",
		CustomerName:  "Anna Schmidt",
		CustomerEmail: "anna@example.com",
		Services: []booking.BookedService{
			{ServiceID: "manicure-classic", Name: catalog.Name{EN: "Classic Manicure", DE: "Klassische Maniküre"}, Price: 25, Duration: 30},
		},
		Date:       "2025-06-10",
		Time:       "14:00",
		Status:     booking.StatusPending,
		TotalPrice: 25, TotalDuration: 30,
	}
}

func TestDispatcherFansOut(t *testing.T) {
	a, b := newFakeSink(nil), newFakeSink(nil)
	d := NewDispatcher([]Sink{a, b}, nil, time.Second)

	d.BookingCreated(testBooking())

	a.wait(t)
	b.wait(t)
	assert.Len(t, a.sent, 1)
	assert.Len(t, b.sent, 1)
}

func TestDispatcherSurvivesFailingSink(t *testing.T) {
	failing := newFakeSink(errors.New("transport down"))
	healthy := newFakeSink(nil)
	d := NewDispatcher([]Sink{failing, healthy}, nil, time.Second)

	// Must not panic and must still reach the healthy sink.
	d.BookingCreated(testBooking())
	healthy.wait(t)
	assert.Len(t, healthy.sent, 1)
}

func TestStaffMessage(t *testing.T) {
	msg := staffMessage(testBooking())
	assert.Contains(t, msg, "Anna Schmidt")
	assert.Contains(t, msg, "2025-06-10")
	assert.Contains(t, msg, "14:00")
	assert.Contains(t, msg, "€25")
}

func TestConfirmationHTML(t *testing.T) {
	html := confirmationHTML(testBooking())
	assert.Contains(t, html, "Klassische Maniküre")
	assert.Contains(t, html, "Gesamt: €25")
	assert.Contains(t, html, "b-1")
}

func TestConfirmationHTMLEscapesCustomerInput(t *testing.T) {
	b := testBooking()
	b.CustomerName = `<script>alert("x")</script>`
	b.ID = "tok<en>"

	html := confirmationHTML(b)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "tok&lt;en&gt;")
}

func TestConfirmationHTMLFallsBackToEnglishName(t *testing.T) {
	b := testBooking()
	b.Services[0].Name = catalog.Name{EN: "Nail Repair"}

	assert.Contains(t, confirmationHTML(b), "Nail Repair")
}

// The bot client must carry its own timeout: telebot's send path takes
// no context, so an unbounded client would hang a dispatch goroutine on
// a dead connection.
func TestTelegramBotSettings(t *testing.T) {
	s := botSettings("token")
	assert.Positive(t, s.Client.Timeout)
	assert.Nil(t, s.Poller, "send-only bot never polls")
}
