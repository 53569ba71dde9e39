// apps/solver/internal/store/memory.go
//
// In-memory store for active solver rounds.
// Rounds only live as long as the process; nothing about a candidate set is
// ever written to disk.
//
// Characteristics:
//   - Stores *round.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the caller's mutation under the write lock, so two requests
//     against the same round never interleave inside the picker.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/internal/round"
)

var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for solver rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *round.Round) error

	// Get retrieves a round by ID.
	// Returns ErrNotFound if the round is unknown.
	Get(ctx context.Context, id string) (*round.Round, error)

	// Update looks up a round and runs fn on it while holding exclusive access.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*round.Round) error) error

	// Delete forgets a round. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex            // guards rounds
	rounds map[string]*round.Round // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*round.Round)}
}

func (m *memory) Save(ctx context.Context, r *round.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*round.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*round.Round) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(r)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}
