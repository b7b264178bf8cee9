package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Config holds the signing material. SecretKey signs every new token;
// PreviousKeys (kid -> secret) are still accepted when verifying.
type Config struct {
	SecretKey    string
	KeyID        string
	PreviousKeys map[string]string
}

// Claims is the identity carried by a session token.
type Claims struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	ID        string `json:"jti,omitempty"`
}

// Option configures a Manager.
type Option func(*implManager)

// WithClock replaces the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *implManager) {
		if now != nil {
			m.now = now
		}
	}
}

type implManager struct {
	keyID        string
	secretKey    []byte
	previousKeys map[string][]byte
	now          func() time.Time
	parser       *jwtlib.Parser
}
