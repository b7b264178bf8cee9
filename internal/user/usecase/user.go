package usecase

import (
	"context"
	"errors"
	"strings"

	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
)

func (uc *usecase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, user.ErrUserNotFound
	}

	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Email: email})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetByEmail: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) List(ctx context.Context, ip user.ListInput) (user.ListOutput, error) {
	usrs, pag, err := uc.repo.Get(ctx, repository.GetOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return user.ListOutput{}, err
	}

	return user.ListOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}
