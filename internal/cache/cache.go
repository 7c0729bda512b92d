package cache

import (
	"context"
	"time"
)

// Cache fronts the roster stats and other derived read models. A nil Cache is
// valid everywhere it is accepted; callers fall through to the source.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
