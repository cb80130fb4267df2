package store

import (
	"sync"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/ports"
)

// MemoryStore is an in-memory implementation of the ProfileStore interface.
// This is primarily intended for testing purposes.
type MemoryStore struct {
	profile core.Profile
	mu      sync.RWMutex
}

var _ ports.ProfileStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new MemoryStore holding a zero profile.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored profile.
func (s *MemoryStore) Load() core.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// Save replaces the stored profile.
func (s *MemoryStore) Save(profile core.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	return nil
}

// Clear resets the store to a zero profile.
// This is useful for testing to reset the store between tests.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = core.Profile{}
}
