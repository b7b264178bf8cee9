package jwt

import "errors"

var (
	ErrMalformedToken   = errors.New("jwt: malformed token")
	ErrInvalidSignature = errors.New("jwt: invalid signature")
	ErrExpiredToken     = errors.New("jwt: token expired")
	ErrSigningFailure   = errors.New("jwt: signing failure")
	ErrInvalidLifetime  = errors.New("jwt: lifetime must be at least one second")
	ErrInvalidSubject   = errors.New("jwt: subject is not a numeric user id")
)
