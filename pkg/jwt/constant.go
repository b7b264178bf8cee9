package jwt

import "time"

const (
	// MinSecretKeyLen is the shortest signing key accepted by New.
	MinSecretKeyLen = 32
	// DefaultLifetime is the lifetime of claims built by NewClaims.
	DefaultLifetime = 24 * time.Hour
	// MinLifetime is the shortest lifetime NewClaimsWithLifetime accepts.
	MinLifetime = time.Second

	headerKeyID = "kid"
)
