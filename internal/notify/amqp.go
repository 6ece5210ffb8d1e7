package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/amicinails/salon-booking-backend/internal/booking"
)

// BookingEvent is the wire form published for downstream consumers
// (dashboards, reporting).
type BookingEvent struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	TotalPrice    int    `json:"total_price"`
	TotalDuration int    `json:"total_duration"`
	Status        string `json:"status"`
}

// AMQPSink publishes booking events to a topic exchange.
type AMQPSink struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPSink dials the broker and declares the exchange.
func NewAMQPSink(url, exchange string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPSink{conn: conn, ch: ch, exchange: exchange}, nil
}

func (s *AMQPSink) Name() string { return "amqp" }

func (s *AMQPSink) Send(ctx context.Context, b *booking.Booking) error {
	event := BookingEvent{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		Date:          b.Date,
		Time:          b.Time,
		TotalPrice:    b.TotalPrice,
		TotalDuration: b.TotalDuration,
		Status:        string(b.Status),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.ch.PublishWithContext(ctx, s.exchange, "booking.created", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Close releases the channel and connection.
func (s *AMQPSink) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
