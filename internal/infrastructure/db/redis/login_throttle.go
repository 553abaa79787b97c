package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per email/origin pair in
// Redis. Key format: login_fail:<email>:<origin>, expiring after window.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginThrottle creates a throttle allowing maxAttempts failures per
// window before Allow starts answering false.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether this identity/origin may attempt another login.
func (t *LoginThrottle) Allow(ctx context.Context, email, origin string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email, origin)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle read: %w", err)
	}
	return n < t.maxAttempts, nil
}

// Failure records a failed attempt; the counter's expiry restarts so a
// burst of failures keeps the account locked for a full window.
func (t *LoginThrottle) Failure(ctx context.Context, email, origin string) error {
	key := t.key(email, origin)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email, origin string) error {
	if err := t.client.Del(ctx, t.key(email, origin)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email, origin string) string {
	return fmt.Sprintf("login_fail:%s:%s", email, origin)
}
