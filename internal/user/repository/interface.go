package repository

import (
	"context"

	"auth-srv/internal/model"
	"auth-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	Get(ctx context.Context, opts GetOptions) ([]model.User, paginator.Paginator, error)
}
