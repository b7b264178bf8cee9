package postgre

import (
	"context"
	"database/sql"

	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/paginator"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	mods, err := r.buildGetOneQuery(opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.buildGetOneQuery: %v", err)
		return model.User{}, err
	}

	var row userRow
	if err := newQuery(mods...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.Bind: %v", err)
		return model.User{}, errors.Wrap(err, "user: unable to select from users")
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	countQuery := newQuery()
	queries.SetCount(countQuery)

	var total int64
	if err := countQuery.QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "user: failed to count users rows")
	}

	var rows []*userRow
	if err := newQuery(r.buildGetQuery(opts.PaginateQuery)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "user: failed to assign all query results to users slice")
	}

	res := make([]model.User, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toModel())
	}

	pq := opts.PaginateQuery
	pq.Adjust()
	return res, paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}
