package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"auth-srv/internal/auth"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// TokenFromRequest returns the candidate token. A header starting with exactly
// "Bearer " wins even when its token is bad; the cookie is read only without one.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return h[len(bearerPrefix):]
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// ExtractAuthenticated verifies the request's credential and returns a user principal.
func (m Middleware) ExtractAuthenticated(r *http.Request) (scope.Principal, error) {
	token := TokenFromRequest(r, m.cookieName)
	if token == "" {
		return scope.Principal{}, scope.ErrNoCredential
	}

	claims, err := m.jwtMgr.Decode(token)
	if err != nil {
		return scope.Principal{}, fmt.Errorf("%w: %w", scope.ErrInvalidOrExpired, err)
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			m.l.Errorf(r.Context(), "internal.middleware.ExtractAuthenticated.IsRevoked: %v", err)
			return scope.Principal{}, fmt.Errorf("%w: %w", scope.ErrInvalidOrExpired, auth.ErrDenylistUnavailable)
		}
		if revoked {
			return scope.Principal{}, fmt.Errorf("%w: %w", scope.ErrInvalidOrExpired, auth.ErrRevokedToken)
		}
	}

	return scope.Authenticated(claims), nil
}

// Auth rejects requests without a valid token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := m.authenticate(c)
		if !ok {
			return
		}
		m.setPrincipal(c, p)
		c.Next()
	}
}

// Admin authenticates, then requires the admin flag.
func (m Middleware) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := m.authenticate(c)
		if !ok {
			return
		}

		admin, err := scope.RequireAdmin(p)
		if err != nil {
			if errors.Is(err, scope.ErrForbidden) {
				claims, _ := p.Claims()
				m.security.LogForbidden(c.Request.Context(), claims.Subject, c.Request.URL.Path)
				m.forbidden(c)
				return
			}
			unauthorized(c)
			return
		}

		m.setPrincipal(c, admin)
		c.Next()
	}
}

// OptionalAuth never rejects. Callers without a usable token are anonymous.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := m.ExtractAuthenticated(c.Request)
		if err != nil {
			if !errors.Is(err, scope.ErrNoCredential) {
				m.security.LogTokenRejected(c.Request.Context(), c.Request.URL.Path, err)
			}
			m.setPrincipal(c, scope.Anonymous())
			c.Next()
			return
		}

		claims, _ := p.Claims()
		m.setPrincipal(c, scope.ForClaims(claims))
		c.Next()
	}
}

func (m Middleware) authenticate(c *gin.Context) (scope.Principal, bool) {
	p, err := m.ExtractAuthenticated(c.Request)
	if err != nil {
		if errors.Is(err, scope.ErrNoCredential) {
			m.l.Debugf(c.Request.Context(), "internal.middleware.authenticate: no credential | Path: %s", c.Request.URL.Path)
		} else {
			m.security.LogTokenRejected(c.Request.Context(), c.Request.URL.Path, err)
		}
		unauthorized(c)
		return scope.Principal{}, false
	}
	return p, true
}

func (m Middleware) setPrincipal(c *gin.Context, p scope.Principal) {
	ctx := scope.SetPrincipalToContext(c.Request.Context(), p)
	if claims, ok := p.Claims(); ok {
		ctx = m.l.With(ctx, "user_id", claims.Subject)
	}
	c.Request = c.Request.WithContext(ctx)
}
