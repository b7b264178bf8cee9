package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth-srv/internal/auth"
	"auth-srv/internal/user"
	"auth-srv/pkg/jwt"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	usr, err := uc.userUC.GetByEmail(ctx, ip.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.hasher.CheckPasswordHash(ip.Password, uc.dummyHash)
			uc.sec.LogLoginFailure(ctx, ip.Email, auth.ErrUserNotFound)
			return auth.LoginOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetByEmail: %v", err)
		return auth.LoginOutput{}, fmt.Errorf("%w: %v", auth.ErrStoreUnavailable, err)
	}

	if !uc.hasher.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		uc.sec.LogLoginFailure(ctx, ip.Email, auth.ErrWrongPassword)
		return auth.LoginOutput{}, auth.ErrWrongPassword
	}

	lifetime := uc.lifetime
	if ip.Remember {
		lifetime = uc.rememberLifetime
	}

	claims, err := jwt.NewClaimsWithLifetime(usr.ID, usr.Email, usr.Name, usr.IsAdmin, lifetime)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.NewClaimsWithLifetime: %v", err)
		return auth.LoginOutput{}, fmt.Errorf("%w: %v", auth.ErrSigningFailure, err)
	}

	token, err := uc.jwtMgr.Encode(claims)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Encode: %v", err)
		return auth.LoginOutput{}, fmt.Errorf("%w: %v", auth.ErrSigningFailure, err)
	}

	uc.l.Infof(ctx, "internal.auth.usecase.Login: user %d signed in", usr.ID)
	return auth.LoginOutput{
		Token:    token,
		Claims:   claims,
		User:     usr,
		Lifetime: lifetime,
	}, nil
}

// Logout never fails for a token that cannot be decoded: there is nothing left to revoke.
func (uc *usecase) Logout(ctx context.Context, ip auth.LogoutInput) error {
	if uc.denylist == nil || ip.Token == "" {
		return nil
	}

	claims, err := uc.jwtMgr.Decode(ip.Token)
	if err != nil || claims.ID == "" {
		return nil
	}

	ttl := claims.Remaining(uc.clock())
	if ttl <= 0 {
		return nil
	}

	if err := uc.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.Revoke: %v", err)
		return fmt.Errorf("%w: %v", auth.ErrDenylistUnavailable, err)
	}

	uc.sec.LogTokenRevoked(ctx, claims.Subject, claims.ID)
	return nil
}
