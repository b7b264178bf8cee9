package middleware

import (
	"context"

	"auth-srv/internal/auth"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
)

// RevocationChecker reports whether a token id was revoked before expiry.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Middleware struct {
	l          log.Logger
	jwtMgr     jwt.Manager
	cookieName string
	denylist   RevocationChecker
	security   *auth.SecurityLogger
	discord    discord.IDiscord
	loginPath  string
}

// Config collects the optional pieces. A nil Denylist disables revocation checks.
type Config struct {
	CookieName string
	LoginPath  string
	Denylist   RevocationChecker
	Discord    discord.IDiscord
}

func New(l log.Logger, jwtMgr jwt.Manager, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = DefaultLoginPath
	}
	return Middleware{
		l:          l,
		jwtMgr:     jwtMgr,
		cookieName: cfg.CookieName,
		denylist:   cfg.Denylist,
		security:   auth.NewSecurityLogger(l),
		discord:    cfg.Discord,
		loginPath:  cfg.LoginPath,
	}
}
