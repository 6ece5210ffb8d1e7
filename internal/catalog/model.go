package catalog

import (
	"net/http"

	"github.com/amicinails/salon-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "service not found")

// Name holds the per-locale display names of a catalog entry. These are
// plain data fields selected by locale, not translation keys.
type Name struct {
	EN string
	VI string
	DE string
}

// Localized returns the name for the given locale, falling back to
// English for unknown locales and for entries missing a translation.
func (n Name) Localized(locale string) string {
	var s string
	switch locale {
	case "vi":
		s = n.VI
	case "de":
		s = n.DE
	}
	if s == "" {
		return n.EN
	}
	return s
}

// Service is an immutable catalog entry. The catalog is fixed at deploy
// time; bookings snapshot the entries they reference so later catalog
// changes never alter past bookings.
type Service struct {
	ID        string
	Name      Name
	Category  Name
	Price     int  // whole euro
	PriceFrom bool // "ab" prices: the listed price is a lower bound
	Duration  int  // minutes
}
