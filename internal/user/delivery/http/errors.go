package http

import (
	"net/http"

	"auth-srv/pkg/errors"
)

const errCodeInvalidQuery = 120001

var errInvalidQuery = errors.NewHTTPError(errCodeInvalidQuery, "Invalid query parameters", http.StatusBadRequest)
