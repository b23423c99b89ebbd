package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts   = 10
	defaultAttemptWindow = time.Minute
)

// limiterClient is the slice of the Redis API the limiter uses. *redis.Client
// satisfies it; tests substitute a stub.
type limiterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// LoginLimiter throttles login attempts per key within a rolling window,
// backed by Redis. Key format: login_attempts:<key>
type LoginLimiter struct {
	client limiterClient
	max    int64
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultAttemptWindow
	}
	return &LoginLimiter{client: client, max: int64(maxAttempts), window: window}
}

// Allow counts this attempt and reports whether it is within budget. The
// expiry is re-armed with NX on every attempt, so a counter that lost its
// TTL (a blip between INCR and EXPIRE) heals on the next call instead of
// accumulating forever. Errors are returned with allowed=true so callers
// can fail open.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, fmt.Errorf("login limiter incr: %w", err)
	}
	if err := l.client.ExpireNX(ctx, k, l.window).Err(); err != nil {
		// Expiry unconfirmed: the count cannot be trusted to reset, so
		// this attempt must not consume budget.
		return true, fmt.Errorf("login limiter expire: %w", err)
	}

	return n <= l.max, nil
}

func (l *LoginLimiter) key(key string) string {
	return "login_attempts:" + key
}
