package middleware

import (
	"auth-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale reads the "lang" header, falling back to Accept-Language, and stores
// the parsed language in the request context.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(langHeader)
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(raw))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
