// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/strongly/internal/platform/constants"
)

// RedisLoginThrottle implements [LoginThrottle] with one counter key per username.
//
// The first failure creates the key with a TTL equal to the lock-out window, so
// the budget is "maxAttempts failures within window"; the key expiring lifts the lock.
type RedisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewRedisLoginThrottle creates a Redis-backed [LoginThrottle].
func NewRedisLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client, maxAttempts: int64(maxAttempts), window: window}
}

func loginAttemptsKey(username string) string {
	return constants.RedisPrefixLoginAttempts + username
}

/*
Locked reports the remaining lock-out for username.

Returns:
  - time.Duration: zero when attempts are allowed
  - error: connectivity errors
*/
func (throttle *RedisLoginThrottle) Locked(context context.Context, username string) (time.Duration, error) {
	key := loginAttemptsKey(username)

	count, err := throttle.client.Get(context, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_throttle_get_failed: %w", err)
	}

	if count < throttle.maxAttempts {
		return 0, nil
	}

	remaining, err := throttle.client.TTL(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_throttle_ttl_failed: %w", err)
	}

	// A key without expiry (-1) should not exist; treat it as a full window.
	if remaining <= 0 {
		remaining = throttle.window
	}
	return remaining, nil
}

// RecordFailure increments the counter and starts the window on the first failure.
func (throttle *RedisLoginThrottle) RecordFailure(context context.Context, username string) error {
	key := loginAttemptsKey(username)

	count, err := throttle.client.Incr(context, key).Result()
	if err != nil {
		return fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	if count == 1 {
		if err := throttle.client.Expire(context, key, throttle.window).Err(); err != nil {
			return fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
		}
	}
	return nil
}

// Reset removes the counter.
func (throttle *RedisLoginThrottle) Reset(context context.Context, username string) error {
	if err := throttle.client.Del(context, loginAttemptsKey(username)).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_delete_failed: %w", err)
	}
	return nil
}

// NoopLoginThrottle never locks anyone out. It is used when REDIS_URL is empty.
type NoopLoginThrottle struct{}

func (NoopLoginThrottle) Locked(context.Context, string) (time.Duration, error) { return 0, nil }
func (NoopLoginThrottle) RecordFailure(context.Context, string) error          { return nil }
func (NoopLoginThrottle) Reset(context.Context, string) error                  { return nil }
