package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login checks the credentials and issues a signed session token.
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	// Logout revokes the presented token when revocation is enabled.
	Logout(ctx context.Context, ip LogoutInput) error
}
