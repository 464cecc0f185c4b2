// Package cache provides the bounded, short-lived in-memory store for normalized capability responses.
package cache

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

// entry pairs a cached value with its expiry instant.
type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a bounded-capacity map with per-entry lifetimes. Capacity eviction and
// recency tracking come from the underlying LRU; expiry is enforced on read, so an
// entry past its lifetime is removed and treated as absent regardless of recency.
// Safe for concurrent readers and writers; racing writers on a cold key are
// last-write-wins.
type Store struct {
	entries *lru.Cache[string, entry]
	now     func() time.Time
}

// New creates a store bounded to capacity entries.
func New(capacity int) *Store {
	return &Store{
		entries: lo.Must(lru.New[string, entry](capacity)),
		now:     time.Now,
	}
}

// Key builds a deterministic cache key from a capability name and its normalized
// request parameters, e.g. "search" + "q=naruto" -> "search:q=naruto".
func Key(capability string, params ...string) string {
	if len(params) == 0 {
		return capability
	}
	return capability + ":" + strings.Join(params, "&")
}

// Get returns the unexpired value stored under key, marking it recently used.
func (s *Store) Get(key string) (any, bool) {
	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}

	if s.now().After(e.expiresAt) {
		s.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for the given lifetime, evicting the least recently
// used entry when the store is at capacity.
func (s *Store) Set(key string, value any, lifetime time.Duration) {
	s.entries.Add(key, entry{value: value, expiresAt: s.now().Add(lifetime)})
}

// Contains reports whether key is present without promoting its recency.
// Expired entries still count as present until a Get sweeps them.
func (s *Store) Contains(key string) bool {
	return s.entries.Contains(key)
}

// Len returns the number of resident entries, expired ones included.
func (s *Store) Len() int {
	return s.entries.Len()
}

// Purge drops every entry.
func (s *Store) Purge() {
	s.entries.Purge()
}
