// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package limiter_test

import (
	"testing"
	"time"

	"github.com/aerovista/avweb/pkg/core/limiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore counts increments per key without any clock, reporting a
// fixed window end.
type fakeStore struct {
	counts map[string]int
	reset  time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		counts: make(map[string]int),
		reset:  time.Now().Add(time.Minute),
	}
}

func (s *fakeStore) Increment(key string, window time.Duration) (int, time.Time) {
	s.counts[key]++
	return s.counts[key], s.reset
}

func TestNewRejectsInvalidArgs(t *testing.T) {
	s := newFakeStore()
	for _, tc := range []struct {
		name   string
		store  limiter.Store
		max    int
		window time.Duration
	}{
		{name: "nil store", store: nil, max: 5, window: time.Minute},
		{name: "zero max", store: s, max: 0, window: time.Minute},
		{name: "negative max", store: s, max: -1, window: time.Minute},
		{name: "zero window", store: s, max: 5, window: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := limiter.New(tc.store, tc.max, tc.window)
			assert.Error(t, err)
		})
	}
}

func TestAllowCountsDownToZero(t *testing.T) {
	s := newFakeStore()
	l, err := limiter.New(s, 3, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		r := l.Allow("ip:inquiries")
		assert.True(t, r.Allowed)
		assert.Equal(t, 3, r.Limit)
		assert.Equal(t, 2-i, r.Remaining)
		assert.Equal(t, s.reset, r.Reset)
	}

	r := l.Allow("ip:inquiries")
	assert.False(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining, "remaining may not go negative")
	assert.Equal(t, s.reset, r.Reset)
}

func TestAllowKeepsCountingRejectedRequests(t *testing.T) {
	s := newFakeStore()
	l, err := limiter.New(s, 1, time.Minute)
	require.NoError(t, err)

	l.Allow("ip:inquiries")
	l.Allow("ip:inquiries")
	l.Allow("ip:inquiries")
	assert.Equal(
		t, 3, s.counts["ip:inquiries"],
		"rejected requests still hit the store",
	)
}

func TestAllowIsolatesKeys(t *testing.T) {
	s := newFakeStore()
	l, err := limiter.New(s, 1, time.Minute)
	require.NoError(t, err)

	assert.True(t, l.Allow("a:inquiries").Allowed)
	assert.False(t, l.Allow("a:inquiries").Allowed)
	assert.True(t, l.Allow("b:inquiries").Allowed)
}
