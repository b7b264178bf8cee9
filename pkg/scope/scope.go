package scope

import (
	"context"

	"auth-srv/pkg/jwt"
)

// Anonymous returns the principal of a caller without a valid token.
func Anonymous() Principal {
	return Principal{kind: KindAnonymous}
}

// Authenticated returns the principal for verified claims. It is always
// KindUser; only RequireAdmin promotes a principal to KindAdmin.
func Authenticated(claims jwt.Claims) Principal {
	return Principal{kind: KindUser, claims: claims}
}

// ForClaims classifies verified claims by their admin flag, for handlers that
// accept any caller and branch on the tier.
func ForClaims(claims jwt.Claims) Principal {
	if claims.IsAdmin {
		return Principal{kind: KindAdmin, claims: claims}
	}
	return Authenticated(claims)
}

// RequireAdmin promotes an authenticated principal whose claims carry the
// admin flag. It never re-authenticates.
func RequireAdmin(p Principal) (Principal, error) {
	if p.kind == KindAnonymous {
		return Principal{}, ErrNoCredential
	}
	if !p.claims.IsAdmin {
		return Principal{}, ErrForbidden
	}
	return Principal{kind: KindAdmin, claims: p.claims}, nil
}

func (p Principal) Kind() Kind { return p.kind }

// Claims returns the verified claims and false for an anonymous principal.
func (p Principal) Claims() (jwt.Claims, bool) {
	if p.kind == KindAnonymous {
		return jwt.Claims{}, false
	}
	return p.claims, true
}

func (p Principal) IsAnonymous() bool { return p.kind == KindAnonymous }

// SetPrincipalToContext sets the principal to context
func SetPrincipalToContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey{}, p)
}

// GetPrincipalFromContext gets the principal from context, anonymous if none was set.
func GetPrincipalFromContext(ctx context.Context) Principal {
	p, ok := ctx.Value(PrincipalCtxKey{}).(Principal)
	if !ok {
		return Anonymous()
	}
	return p
}

// GetUserIDFromContext gets the subject from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetPrincipalFromContext(ctx).Claims()
	if !ok {
		return "", false
	}
	return claims.Subject, true
}
