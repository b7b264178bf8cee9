package repository

import (
	"context"
	"time"
)

// Denylist stores ids of tokens revoked before their natural expiry.
//
//go:generate mockery --name Denylist
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
