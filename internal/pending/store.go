// Package pending holds study plans between the handoff initiation and the
// OAuth callback. Entries are token-keyed, single-use, and expire after a TTL.
//
// The store is deliberately single-process, best-effort memory: in a
// multi-instance deployment the callback may land on an instance that never
// saw the Put, and the flow degrades to the no-events outcome instead of
// erroring.
package pending

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"examprep-backend/internal/model"
)

const (
	// DefaultTTL bounds how long an unconsumed plan survives.
	DefaultTTL = 15 * time.Minute

	// DefaultMaxEntries caps the number of in-flight handoffs held at once.
	DefaultMaxEntries = 1000
)

// ErrNoEvents is returned by Put when the event list is empty.
var ErrNoEvents = errors.New("pending: event list must not be empty")

// Options configures a Store. Now and NewToken exist so tests can control
// expiry and token generation deterministically; both default to real
// implementations when nil.
type Options struct {
	TTL        time.Duration
	MaxEntries int
	Now        func() time.Time
	NewToken   func() string
}

// Store maps correlation tokens to pending plans.
//
// The mutex covers the whole take-once sequence: two near-simultaneous
// callback deliveries for the same token cannot both succeed, the second
// observes absent.
type Store struct {
	mu       sync.Mutex
	entries  *expirable.LRU[string, model.PendingPlan]
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

// New creates a Store from opts, filling in defaults for zero fields.
func New(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewToken == nil {
		opts.NewToken = uuid.NewString
	}

	return &Store{
		entries:  expirable.NewLRU[string, model.PendingPlan](opts.MaxEntries, nil, opts.TTL),
		ttl:      opts.TTL,
		now:      opts.Now,
		newToken: opts.NewToken,
	}
}

// Put stores the events under a fresh unguessable token and returns it.
func (s *Store) Put(events []model.EventDescriptor) (string, error) {
	if len(events) == 0 {
		return "", ErrNoEvents
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.newToken()
	s.entries.Add(token, model.PendingPlan{
		Token:     token,
		Events:    events,
		CreatedAt: s.now(),
	})
	return token, nil
}

// TakeOnce removes and returns the plan for token. Absent is reported
// identically whether the token was never issued, already consumed, or
// expired, so callers cannot distinguish the cases.
func (s *Store) TakeOnce(token string) ([]model.EventDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries.Get(token)
	if !ok {
		return nil, false
	}
	s.entries.Remove(token)

	// The LRU evicts on its own wall clock; the injected clock is
	// authoritative so tests control expiry.
	if s.now().Sub(entry.CreatedAt) > s.ttl {
		return nil, false
	}

	return entry.Events, true
}

// Len reports the number of live entries, for observability.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}
