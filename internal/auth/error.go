package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is the parent of every credential mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrInvalidCredentials)
	ErrWrongPassword      = fmt.Errorf("%w: incorrect password", ErrInvalidCredentials)

	ErrStoreUnavailable    = errors.New("credential store unavailable")
	ErrSigningFailure      = errors.New("token generation failed")
	ErrRevokedToken        = errors.New("token has been revoked")
	ErrDenylistUnavailable = errors.New("revocation store unavailable")
)
