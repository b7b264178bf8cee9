package user

import (
	"auth-srv/internal/model"
	"auth-srv/pkg/paginator"
)

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}
