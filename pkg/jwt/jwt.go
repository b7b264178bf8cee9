package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func newParser(now func() time.Time) *jwtlib.Parser {
	return jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(now),
	)
}

// Encode signs claims with the current key.
func (m *implManager) Encode(claims Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	if m.keyID != "" {
		token.Header[headerKeyID] = m.keyID
	}
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningFailure, err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of token and returns its claims.
func (m *implManager) Decode(token string) (Claims, error) {
	var claims Claims
	if _, err := m.parser.ParseWithClaims(token, &claims, m.keyFunc); err != nil {
		return Claims{}, mapParseError(err)
	}
	return claims, nil
}

func (m *implManager) keyFunc(t *jwtlib.Token) (any, error) {
	if t.Method != jwtlib.SigningMethodHS256 {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	kid, _ := t.Header[headerKeyID].(string)
	if kid == "" || kid == m.keyID {
		return m.secretKey, nil
	}
	if key, ok := m.previousKeys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("unknown key id %q", kid)
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwtlib.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid),
		errors.Is(err, jwtlib.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpiredToken
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
