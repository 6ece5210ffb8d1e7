package request

// ByIDRequest is a common struct for endpoints that require an ID path
// parameter. Booking IDs are opaque tokens (the customer's client may
// generate them), so no UUID format is enforced here.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}
