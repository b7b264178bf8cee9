package repository

import "auth-srv/pkg/paginator"

// GetOneOptions selects a single user by its exact email.
type GetOneOptions struct {
	Email string
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	PaginateQuery paginator.PaginateQuery
}
