package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDenylist(t *testing.T) (*implDenylist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := pkgRedis.New(pkgRedis.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return New(log.NewNop(), client).(*implDenylist), mr
}

func TestRevokeAndCheck(t *testing.T) {
	d, mr := newTestDenylist(t)
	ctx := context.Background()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Hour))
	assert.True(t, mr.Exists(keyPrefix+"jti-1"))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"jti-1"))

	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(time.Hour + time.Second)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevoke_EdgeCases(t *testing.T) {
	d, mr := newTestDenylist(t)
	ctx := context.Background()

	assert.Error(t, d.Revoke(ctx, "", time.Hour))

	require.NoError(t, d.Revoke(ctx, "expired", 0))
	assert.False(t, mr.Exists(keyPrefix+"expired"))

	revoked, err := d.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestIsRevoked_StoreDown(t *testing.T) {
	d, mr := newTestDenylist(t)
	mr.Close()

	_, err := d.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
