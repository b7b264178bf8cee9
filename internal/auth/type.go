package auth

import (
	"time"

	"auth-srv/internal/model"
	"auth-srv/pkg/jwt"
)

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

type LoginOutput struct {
	Token    string
	Claims   jwt.Claims
	User     model.User
	Lifetime time.Duration
}

type LogoutInput struct {
	Token string
}
