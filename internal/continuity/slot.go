// Package continuity preserves the in-progress conversation across the OAuth
// redirect. The snapshot lives in a single fixed slot: only one handoff can be
// in flight at a time, and the slot makes that single-flight rule explicit
// instead of accidental.
package continuity

import (
	"errors"
	"sync"

	"examprep-backend/internal/model"
)

// ErrHandoffInFlight is returned when a snapshot is saved while a previous one
// has not been consumed yet.
var ErrHandoffInFlight = errors.New("continuity: a handoff is already in flight")

// Slot holds at most one conversation snapshot. Written once per handoff
// attempt, read and cleared exactly once on return.
type Slot struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	occupied bool
}

// NewSlot creates an empty snapshot slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Save stores the transcript for the return leg.
func (s *Slot) Save(messages []model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupied {
		return ErrHandoffInFlight
	}

	s.messages = append([]model.ChatMessage(nil), messages...)
	s.occupied = true
	return nil
}

// TakeOnce returns the snapshot and clears the slot. An empty slot reports
// false; the caller degrades to a fresh session rather than failing.
func (s *Slot) TakeOnce() ([]model.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.occupied {
		return nil, false
	}

	messages := s.messages
	s.messages = nil
	s.occupied = false
	return messages, true
}
