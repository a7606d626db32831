// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"
)

// Clock provides the current time. Tests pass a fixed clock.
type Clock interface {
	Now() time.Time
}

type clockKey struct{}

// WithClock returns a child context whose inserts are stamped by c
// instead of time.Now.
func WithClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, c)
}

// now is truncated to microseconds, the resolution PostgreSQL stores.
func now(ctx context.Context) time.Time {
	t := time.Now()
	if c, ok := ctx.Value(clockKey{}).(Clock); ok {
		t = c.Now()
	}
	return t.UTC().Truncate(time.Microsecond)
}
