package usecase

import (
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
	pkgLog "auth-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
