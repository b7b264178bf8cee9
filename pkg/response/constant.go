package response

const (
	DefaultStackTraceDepth  = 32
	DefaultErrorMessage     = "Something went wrong"
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500
	DiscordMaxMessageLen    = 4000

	redacted = "[REDACTED]"
)

// Request headers and body fields that never leave the process in a bug report.
var (
	sensitiveHeaders = map[string]bool{"Authorization": true, "Cookie": true}
	sensitiveFields  = map[string]bool{"password": true, "token": true}
)
