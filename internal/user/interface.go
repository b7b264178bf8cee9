package user

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, ip ListInput) (ListOutput, error)
}
