package jwt

import (
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var defaultClock = time.Now

// NewClaims builds claims valid for DefaultLifetime starting now.
func NewClaims(userID int64, email, name string, isAdmin bool) Claims {
	c, _ := newClaims(defaultClock(), userID, email, name, isAdmin, DefaultLifetime)
	return c
}

// NewClaimsWithLifetime builds claims valid for lifetime starting now.
func NewClaimsWithLifetime(userID int64, email, name string, isAdmin bool, lifetime time.Duration) (Claims, error) {
	return newClaims(defaultClock(), userID, email, name, isAdmin, lifetime)
}

func newClaims(now time.Time, userID int64, email, name string, isAdmin bool, lifetime time.Duration) (Claims, error) {
	if lifetime < MinLifetime {
		return Claims{}, ErrInvalidLifetime
	}
	iat := now.Unix()
	return Claims{
		Subject:   strconv.FormatInt(userID, 10),
		Email:     email,
		Name:      name,
		IsAdmin:   isAdmin,
		IssuedAt:  iat,
		ExpiresAt: iat + int64(lifetime/time.Second),
		ID:        uuid.NewString(),
	}, nil
}

// UserID parses the subject back into the numeric user id.
func (c Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidSubject
	}
	return id, nil
}

// Remaining is the time left before the claims expire at now. Never negative.
func (c Claims) Remaining(now time.Time) time.Duration {
	d := time.Unix(c.ExpiresAt, 0).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// jwtlib.Claims implementation.

func (c Claims) GetExpirationTime() (*jwtlib.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwtlib.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwtlib.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwtlib.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwtlib.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuer() (string, error)                  { return "", nil }
func (c Claims) GetSubject() (string, error)                 { return c.Subject, nil }
func (c Claims) GetAudience() (jwtlib.ClaimStrings, error)   { return nil, nil }
