package repository

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyFilter  = errors.New("get one requires an id or an email")
)
