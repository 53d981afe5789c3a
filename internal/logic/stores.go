package logic

import (
	"sync"

	"carousel/internal/carousel"
)

// MemoryStateStore is an in-memory implementation of StateStore
type MemoryStateStore struct {
	mu    sync.RWMutex
	state carousel.State
}

// NewMemoryStateStore creates a store seeded with an initial snapshot
func NewMemoryStateStore(initial carousel.State) *MemoryStateStore {
	return &MemoryStateStore{state: initial}
}

func (s *MemoryStateStore) Get() carousel.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *MemoryStateStore) Set(state carousel.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
