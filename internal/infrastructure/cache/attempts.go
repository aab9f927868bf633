package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginAttemptsPrefix = "login:failed:"

// Counter is the slice of the redis API the tracker needs.
// *redis.Client satisfies it.
type Counter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginAttemptTracker counts failed logins per login name inside a fixed window.
type LoginAttemptTracker struct {
	client      Counter
	maxAttempts int
	window      time.Duration
}

func NewLoginAttemptTracker(client Counter, maxAttempts int, window time.Duration) *LoginAttemptTracker {
	return &LoginAttemptTracker{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func attemptsKey(login string) string {
	return loginAttemptsPrefix + strings.ToLower(strings.TrimSpace(login))
}

// Blocked reports whether login already used up its attempts.
func (t *LoginAttemptTracker) Blocked(ctx context.Context, login string) (bool, error) {
	count, err := t.client.Get(ctx, attemptsKey(login)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read login attempts: %w", err)
	}
	return count >= t.maxAttempts, nil
}

// RecordFailure increments the counter, starting the window on the first failure.
func (t *LoginAttemptTracker) RecordFailure(ctx context.Context, login string) error {
	key := attemptsKey(login)

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("increment login attempts: %w", err)
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("expire login attempts: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginAttemptTracker) Reset(ctx context.Context, login string) error {
	if err := t.client.Del(ctx, attemptsKey(login)).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
