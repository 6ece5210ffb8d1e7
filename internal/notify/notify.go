// Package notify delivers best-effort staff and customer notifications
// for newly admitted bookings. Delivery is fire-and-forget: a failed or
// slow channel is logged and dropped, and can never fail or delay the
// booking itself.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amicinails/salon-booking-backend/internal/booking"
)

// Sink delivers one staff notification message over some channel
// (Telegram, message queue, log).
type Sink interface {
	Name() string
	Send(ctx context.Context, b *booking.Booking) error
}

// Mailer sends the customer-facing booking confirmation.
type Mailer interface {
	SendConfirmation(ctx context.Context, b *booking.Booking) error
}

// Dispatcher fans a booking event out to all configured sinks. It
// implements booking.Notifier.
type Dispatcher struct {
	sinks   []Sink
	mailer  Mailer
	timeout time.Duration
}

// NewDispatcher builds a Dispatcher. mailer may be nil when email is
// not configured.
func NewDispatcher(sinks []Sink, mailer Mailer, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{sinks: sinks, mailer: mailer, timeout: timeout}
}

// BookingCreated dispatches asynchronously and returns immediately.
// Each channel gets its own bounded context so one slow transport
// cannot starve the others.
func (d *Dispatcher) BookingCreated(b *booking.Booking) {
	for _, sink := range d.sinks {
		go func(s Sink) {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()
			if err := s.Send(ctx, b); err != nil {
				log.Printf("notify: %s delivery failed for booking %s: %v", s.Name(), b.ID, err)
			}
		}(sink)
	}

	if d.mailer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()
			if err := d.mailer.SendConfirmation(ctx, b); err != nil {
				log.Printf("notify: confirmation email failed for booking %s: %v", b.ID, err)
			}
		}()
	}
}

// staffMessage renders the push text shown to staff. German, matching
// the salon's working language.
func staffMessage(b *booking.Booking) string {
	return fmt.Sprintf("Neue Buchung erhalten!\n%s - %s um %s Uhr\n€%d",
		b.CustomerName, b.Date, b.Time, b.TotalPrice)
}

// LogSink writes staff notifications to the process log. It is the
// fallback when no real transport is configured.
type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Send(_ context.Context, b *booking.Booking) error {
	log.Printf("notify: %s", staffMessage(b))
	return nil
}
