package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/amicinails/salon-booking-backend/internal/booking"
)

// ResendMailer sends the customer's booking confirmation through the
// Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	if from == "" {
		from = "AMICI NAILS SALON <noreply@amicinails.example>"
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) SendConfirmation(ctx context.Context, b *booking.Booking) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{b.CustomerEmail},
		Subject: "Terminbestätigung - " + b.ID,
		Html:    confirmationHTML(b),
	})
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

func confirmationHTML(b *booking.Booking) string {
	var rows strings.Builder
	for _, s := range b.Services {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td style=\"text-align:right\">€%d</td></tr>",
			html.EscapeString(s.Name.Localized("de")), s.Price)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
    <h1>AMICI NAILS SALON</h1>
    <p>Hallo %s,</p>
    <p>Ihr Termin am <strong>%s</strong> um <strong>%s Uhr</strong> ist eingegangen.</p>
    <table style="width:100%%">%s</table>
    <p><strong>Gesamt: €%d</strong> · Dauer: ca. %d Minuten</p>
    <p>Buchungsnummer: %s</p>
  </body>
</html>`, html.EscapeString(b.CustomerName), b.Date, b.Time, rows.String(),
		b.TotalPrice, b.TotalDuration, html.EscapeString(b.ID))
}
