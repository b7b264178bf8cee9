package usecase

import (
	"time"

	"auth-srv/internal/auth"
	"auth-srv/internal/auth/repository"
	"auth-srv/internal/user"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/jwt"
	pkgLog "auth-srv/pkg/log"
)

// Config holds the token lifetimes. Denylist is optional; nil keeps logout stateless.
type Config struct {
	Lifetime         time.Duration
	RememberLifetime time.Duration
	Denylist         repository.Denylist
}

type usecase struct {
	l        pkgLog.Logger
	sec      *auth.SecurityLogger
	userUC   user.UseCase
	hasher   encrypter.Hasher
	jwtMgr   jwt.Manager
	denylist repository.Denylist

	lifetime         time.Duration
	rememberLifetime time.Duration
	dummyHash        string
	clock            func() time.Time
}

func New(l pkgLog.Logger, userUC user.UseCase, hasher encrypter.Hasher, jwtMgr jwt.Manager, cfg Config) auth.UseCase {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = jwt.DefaultLifetime
	}
	if cfg.RememberLifetime <= 0 {
		cfg.RememberLifetime = cfg.Lifetime
	}

	// compared against when the email is unknown so both failures cost one bcrypt check
	dummyHash, _ := hasher.HashPassword("not-a-real-password")

	return &usecase{
		l:                l,
		sec:              auth.NewSecurityLogger(l),
		userUC:           userUC,
		hasher:           hasher,
		jwtMgr:           jwtMgr,
		denylist:         cfg.Denylist,
		lifetime:         cfg.Lifetime,
		rememberLifetime: cfg.RememberLifetime,
		dummyHash:        dummyHash,
		clock:            time.Now,
	}
}
