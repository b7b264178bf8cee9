package scope

import "errors"

var (
	// ErrNoCredential is returned when a request carries no token at all.
	ErrNoCredential = errors.New("scope: no credential")
	// ErrInvalidOrExpired is returned when a presented token cannot be accepted.
	ErrInvalidOrExpired = errors.New("scope: invalid or expired credential")
	// ErrForbidden is returned when an authenticated principal lacks the admin tier.
	ErrForbidden = errors.New("scope: insufficient role")
)
