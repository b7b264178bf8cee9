package redis

import (
	"auth-srv/internal/auth/repository"
	pkgLog "auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"
)

const keyPrefix = "auth:revoked:"

type implDenylist struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.Denylist = &implDenylist{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) repository.Denylist {
	return &implDenylist{
		l:     l,
		redis: redis,
	}
}
