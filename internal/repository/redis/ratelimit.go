package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/bloggers-platform/domain"
)

const (
	KeyRateLimit = "ratelimit:%s"
)

// fixedWindowScript increments the counter and starts the window on the
// first hit. KEYS = {counter}, ARGV = {window in milliseconds}
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

type rateLimiter struct {
	client *redis.Client
}

var _ domain.RateLimiter = (*rateLimiter)(nil)

func NewRateLimiter(client *redis.Client) *rateLimiter {
	return &rateLimiter{client}
}

func (r *rateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	hits, err := fixedWindowScript.Run(ctx, r.client, []string{fmt.Sprintf(KeyRateLimit, key)}, window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return hits <= limit, nil
}
