package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Purposes keep login attempts and signups in separate windows.
const (
	PurposeSignup = "signup"
	PurposeLogin  = "login"
)

// Limiter counts requests per key in fixed redis windows.
type Limiter struct {
	client *redis.Client
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// Allow increments the counter for key and reports whether the request fits
// inside the window. With no redis client configured everything is allowed.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if l.client == nil || limit <= 0 {
		return true, nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit check for %s: %w", key, err)
	}
	// The window starts when the key is born. Refreshing the TTL on later
	// attempts would keep a probed key alive past its window.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, fmt.Errorf("rate limit window for %s: %w", key, err)
		}
	}

	return count <= int64(limit), nil
}

// AllowIP is Allow keyed by client IP and purpose, so login attempts and
// signups count against separate windows.
func (l *Limiter) AllowIP(ctx context.Context, ip, purpose string, limit int, window time.Duration) (bool, error) {
	return l.Allow(ctx, fmt.Sprintf("%s:%s", purpose, ip), limit, window)
}

// Reset clears the counter for an IP and purpose, so a successful login
// stops counting against the failure window.
func (l *Limiter) Reset(ctx context.Context, ip, purpose string) error {
	if l.client == nil {
		return nil
	}
	return l.client.Del(ctx, fmt.Sprintf("ratelimit:%s:%s", purpose, ip)).Err()
}
