package redis

import (
	"context"
	"errors"
	"time"
)

var errEmptyTokenID = errors.New("empty token id")

// Revoke keeps tokenID for ttl. A non-positive ttl means the token already expired, so nothing is stored.
func (d *implDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errEmptyTokenID
	}
	if ttl <= 0 {
		return nil
	}
	if err := d.redis.Set(ctx, keyPrefix+tokenID, 1, ttl); err != nil {
		d.l.Errorf(ctx, "internal.auth.repository.redis.Revoke.Set: %v", err)
		return err
	}
	return nil
}

func (d *implDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	ok, err := d.redis.Exists(ctx, keyPrefix+tokenID)
	if err != nil {
		d.l.Errorf(ctx, "internal.auth.repository.redis.IsRevoked.Exists: %v", err)
		return false, err
	}
	return ok, nil
}
