package middleware

import (
	"fmt"
	"html"
	"html/template"
	"net/http"

	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const noticeTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Unauthorized</title></head>
<body>
<script>alert("Session expired or not logged in. Please log in."); window.location.href = "%s";</script>
<noscript><p>Session expired or not logged in. <a href="%s">Log in</a>.</p></noscript>
</body>
</html>`

// unauthorized marks the request 401 without writing a body, leaving the
// rendering to the Unauthorized interceptor.
func unauthorized(c *gin.Context) {
	c.Status(http.StatusUnauthorized)
	c.Abort()
}

func (m Middleware) forbidden(c *gin.Context) {
	response.Forbidden(c)
	c.Abort()
}

// Unauthorized renders any bodiless 401. Browsers get a notice page that sends
// them to the login page; everyone else gets the JSON envelope.
func (m Middleware) Unauthorized() gin.HandlerFunc {
	notice := []byte(fmt.Sprintf(noticeTemplate,
		template.JSEscapeString(m.loginPath), html.EscapeString(m.loginPath)))

	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() != http.StatusUnauthorized || c.Writer.Written() {
			return
		}

		switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) {
		case gin.MIMEHTML:
			c.Data(http.StatusUnauthorized, "text/html; charset=utf-8", notice)
		default:
			response.Unauthorized(c)
		}
	}
}
