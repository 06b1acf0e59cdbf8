package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter answers whether a caller may proceed. Used on the auth endpoint
// to slow down password guessing.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RedisLimiter is a fixed-window counter per key. When redis is unreachable
// it fails open: a broken limiter must not lock the admin out.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(rdb *redis.Client, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l.rdb == nil {
		return true
	}

	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, redisKey, l.window)
	}
	return count <= l.limit
}

// AllowAll never limits. Used when no redis URL is configured and in tests.
type AllowAll struct{}

func (AllowAll) Allow(ctx context.Context, key string) bool { return true }
