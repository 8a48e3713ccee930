// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package limiter defines the fixed-window rate limiting use case
// port. The underlying requirement is to track request counts per
// client identifier within a time window, and the counter store is
// an injected dependency rather than process-wide state, so an
// in-memory map can serve a single-process deployment while an
// external shared cache can serve a multi-process deployment with
// the same Limiter logic. See pkg/adapter/limiter/memory for the
// in-memory Store implementation.
package limiter

import (
	"fmt"
	"time"
)

// Store abstracts a counter store with TTL-per-key semantics.
// Implementations must be safe for concurrent use.
type Store interface {
	// Increment increments the counter of the given key and returns
	// the incremented count together with the end of the current
	// window. When the key is absent or its window has elapsed, a
	// fresh window of the given length is started and 1 is returned.
	Increment(key string, window time.Duration) (count int, reset time.Time)
}

// Result reports the outcome of one Allow check. The limit metadata
// is reported on allowed requests too, so callers can expose the
// X-RateLimit-* response headers uniformly.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter applies a fixed-window limit of Max requests per Window to
// each key, counting through the injected Store.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
}

// New instantiates a Limiter. The max argument must be positive and
// the window argument must be a positive duration.
func New(s Store, max int, window time.Duration) (*Limiter, error) {
	switch {
	case s == nil:
		return nil, fmt.Errorf("nil store")
	case max <= 0:
		return nil, fmt.Errorf("non-positive max requests: %d", max)
	case window <= 0:
		return nil, fmt.Errorf("non-positive window: %s", window)
	}
	return &Limiter{store: s, max: max, window: window}, nil
}

// Allow counts one request for the given key and reports whether it
// fits within the configured window. Requests beyond the limit keep
// being counted, so a client which keeps retrying does not slide its
// own window forward.
func (l *Limiter) Allow(key string) Result {
	count, reset := l.store.Increment(key, l.window)
	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= l.max,
		Limit:     l.max,
		Remaining: remaining,
		Reset:     reset,
	}
}
