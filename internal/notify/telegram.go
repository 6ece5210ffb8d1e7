package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/amicinails/salon-booking-backend/internal/booking"
)

// TelegramSink pushes staff notifications to the salon's Telegram chat.
type TelegramSink struct {
	bot    *tele.Bot
	chatID int64
}

// botSettings configures a send-only bot: no poller, and an HTTP client
// with a hard timeout. telebot's API takes no context, so the client
// timeout is what bounds each send.
func botSettings(token string) tele.Settings {
	return tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTelegramSink connects the bot.
func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tele.NewBot(botSettings(token))
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSink) Name() string { return "telegram" }

// Send ignores ctx: telebot cannot carry one, and the bot's HTTP client
// timeout already bounds the call.
func (s *TelegramSink) Send(_ context.Context, b *booking.Booking) error {
	_, err := s.bot.Send(tele.ChatID(s.chatID), staffMessage(b))
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
