// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/strongly/internal/users/auth"
)

var _ auth.LoginThrottle = (*Throttle)(nil)

// Throttle is an in-memory [auth.LoginThrottle] with the same counting rules as
// the Redis one. The window never expires on its own; tests call Reset.
type Throttle struct {
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
	failures    map[string]int
}

// NewThrottle creates a throttle that locks after maxAttempts failures.
func NewThrottle(maxAttempts int, window time.Duration) *Throttle {
	return &Throttle{maxAttempts: maxAttempts, window: window, failures: map[string]int{}}
}

func (t *Throttle) Locked(_ context.Context, username string) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failures[username] >= t.maxAttempts {
		return t.window, nil
	}
	return 0, nil
}

func (t *Throttle) RecordFailure(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failures[username]++
	return nil
}

func (t *Throttle) Reset(_ context.Context, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.failures, username)
	return nil
}

// Failures reports the current counter for username.
func (t *Throttle) Failures(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.failures[username]
}
