// Package state owns the canonical application state. The Store is the
// single source of truth; every write goes through Apply.
package state

import (
	"sync"

	"github.com/bayufn/artha/internal/domain"
)

// Store holds the current AppState snapshot. Apply serializes all writers,
// so mutations always run against the latest state and a stale snapshot can
// never overwrite a newer one.
type Store struct {
	mu      sync.RWMutex
	state   domain.AppState
	version uint64
	changes chan struct{}
}

// New creates a store seeded with the given state.
func New(initial domain.AppState) *Store {
	return &Store{
		state:   initial.Clone(),
		changes: make(chan struct{}, 1),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// SnapshotVersion returns the current state together with its version.
// Callers use the version to detect that an async result went stale.
func (s *Store) SnapshotVersion() (domain.AppState, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), s.version
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Apply runs a mutation against the current state and, on success, installs
// the result as the new canonical state. Mutations are all-or-nothing: on
// error the state is unchanged and the error is returned as-is.
func (s *Store) Apply(m domain.Mutation) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := m(s.state)
	if err != nil {
		return s.state.Clone(), err
	}

	s.state = next
	s.version++
	s.signal()
	return next.Clone(), nil
}

// Changes returns a channel that receives a coalesced signal after each
// applied mutation. The channel has capacity one; a slow consumer sees at
// most one pending signal and reads the newest state via Snapshot.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

func (s *Store) signal() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
