package postgre

import (
	"database/sql"

	"auth-srv/internal/user/repository"
	pkgLog "auth-srv/pkg/log"

	"github.com/aarondl/sqlboiler/v4/drivers"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

// dialect is the postgres dialect sqlboiler's psql driver generates.
var dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
