package scope

import "auth-srv/pkg/jwt"

// Kind is the verified tier of a caller.
type Kind int

const (
	KindAnonymous Kind = iota
	KindUser
	KindAdmin
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Principal is the caller identity after verification. The zero value is anonymous.
type Principal struct {
	kind   Kind
	claims jwt.Claims
}

// PrincipalCtxKey is the context key of the verified Principal.
type PrincipalCtxKey struct{}
