package response

import "auth-srv/pkg/errors"

// Resp is the JSON envelope of every non-login API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinels to the HTTP error they surface as.
type ErrorMapping map[error]*errors.HTTPError
