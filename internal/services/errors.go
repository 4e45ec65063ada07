package services

import "errors"

// Sentinel errors returned by the services so handlers can map failures to
// response codes with errors.Is instead of matching message strings.
var (
	// ErrMissingToken means no bearer credential was presented at all.
	ErrMissingToken = errors.New("token missing")
	// ErrInvalidToken covers forged, malformed and expired tokens, and
	// tokens whose embedded id no longer resolves to a user. Callers must
	// not distinguish these cases outwardly.
	ErrInvalidToken = errors.New("token invalid")
	// ErrInvalidCredentials is returned for both unknown-username and
	// wrong-password login attempts to avoid username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden means the principal is authenticated but does not own
	// the resource.
	ErrForbidden = errors.New("forbidden: invalid user")

	ErrBlogNotFound = errors.New("blog not found")
)

// ValidationError reports a rejected request field. The message text is part
// of the API contract and is asserted by clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
