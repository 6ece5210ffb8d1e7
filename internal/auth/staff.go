package auth

import (
	"net/http"

	"github.com/amicinails/salon-booking-backend/internal/pkg/apperror"
)

var ErrBadCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")

// StaffVerifier authenticates the salon's single staff account, whose
// credentials come from configuration rather than a user table.
type StaffVerifier struct {
	username     string
	passwordHash string
	hasher       PasswordHasher
}

func NewStaffVerifier(username, passwordHash string, hasher PasswordHasher) *StaffVerifier {
	return &StaffVerifier{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
	}
}

// Verify checks the submitted credentials against the configured staff
// account.
func (v *StaffVerifier) Verify(username, password string) error {
	if username != v.username {
		return ErrBadCredentials
	}
	if err := v.hasher.Compare(v.passwordHash, password); err != nil {
		return ErrBadCredentials
	}
	return nil
}
