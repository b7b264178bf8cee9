package postgre

import (
	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/paginator"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const usersTable = `"users"`

var userColumns = struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      string
}{
	ID:           "id",
	Email:        "email",
	Name:         "name",
	PasswordHash: "password_hash",
	IsAdmin:      "is_admin",
}

// userRow mirrors the users table. is_admin may be NULL in legacy rows and reads as false.
type userRow struct {
	ID           int64     `boil:"id"`
	Email        string    `boil:"email"`
	Name         string    `boil:"name"`
	PasswordHash string    `boil:"password_hash"`
	IsAdmin      null.Bool `boil:"is_admin"`
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin.Valid && r.IsAdmin.Bool,
	}
}

func newQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, append(mods, qm.From(usersTable))...)
	return q
}

func selectColumns() qm.QueryMod {
	return qm.Select(
		userColumns.ID,
		userColumns.Email,
		userColumns.Name,
		userColumns.PasswordHash,
		userColumns.IsAdmin,
	)
}

func (r *implRepository) buildGetOneQuery(opts repository.GetOneOptions) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{selectColumns()}

	if opts.Email == "" {
		return nil, repository.ErrEmptyFilter
	}
	mods = append(mods, qm.Where(userColumns.Email+" = ?", opts.Email))

	return append(mods, qm.Limit(1)), nil
}

func (r *implRepository) buildGetQuery(pq paginator.PaginateQuery) []qm.QueryMod {
	pq.Adjust()
	return []qm.QueryMod{
		selectColumns(),
		qm.OrderBy(userColumns.ID + " ASC"),
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
	}
}
