package http

import (
	"errors"
	"net/http"

	"auth-srv/internal/auth"
	pkgErrors "auth-srv/pkg/errors"
)

const (
	errCodeValidation     = 110001
	errCodeLoginPageUnset = 110002
)

var (
	errInvalidForm    = pkgErrors.NewHTTPError(errCodeValidation, "Invalid form body", http.StatusBadRequest)
	errLoginPageUnset = pkgErrors.NewHTTPError(errCodeLoginPageUnset, "Login page is not configured", http.StatusNotFound)
)

// jsonLoginMessage picks the message the JSON channel discloses for a failed login.
func jsonLoginMessage(err error) messageKey {
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, auth.ErrWrongPassword):
		return msgWrongPassword
	case errors.Is(err, auth.ErrSigningFailure):
		return msgTokenError
	default:
		return msgServerError
	}
}
