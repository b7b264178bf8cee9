package middleware

const (
	DefaultCookieName = "jwt_token"
	DefaultLoginPath  = "/login"

	bearerPrefix = "Bearer "
	langHeader   = "lang"
)
