// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memory provides an in-memory implementation of the
// limiter.Store interface, suitable for single-process deployments.
// Multi-process deployments need a shared store implementation
// instead; the Limiter itself stays unchanged.
package memory

import (
	"sync"
	"time"
)

// purgeInterval bounds how often expired entries are swept. The sweep
// runs lazily from within Increment, so an idle store costs nothing.
const purgeInterval = 5 * time.Minute

type entry struct {
	count int
	reset time.Time
}

// Store is an in-memory TTL counter map. The zero value is not
// usable; instantiate it with New.
type Store struct {
	mu        sync.Mutex
	entries   map[string]*entry
	lastPurge time.Time

	// now is the clock function, replaceable by tests.
	now func() time.Time
}

// New instantiates an empty in-memory Store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Increment implements the limiter.Store interface.
func (s *Store) Increment(key string, window time.Duration) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.purge(now)
	e, ok := s.entries[key]
	if !ok || !e.reset.After(now) {
		e = &entry{reset: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.reset
}

// purge drops expired entries, at most once per purgeInterval, so
// keys of one-off clients do not accumulate forever.
func (s *Store) purge(now time.Time) {
	if now.Sub(s.lastPurge) < purgeInterval {
		return
	}
	s.lastPurge = now
	for k, e := range s.entries {
		if !e.reset.After(now) {
			delete(s.entries, k)
		}
	}
}
