package logic

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"carousel/internal/carousel"
	"carousel/internal/config"
)

// StatePersister writes the store's snapshot to the state file and reads
// back edits made by other processes.
type StatePersister struct {
	mu        sync.Mutex
	svc       config.ConfigService
	base      config.Config
	store     StateStore
	lastSaved carousel.State
	saved     bool
}

// NewStatePersister creates a persister. cfg supplies every setting except the carousel triple,
// which always comes from the store.
func NewStatePersister(svc config.ConfigService, cfg *config.Config, store StateStore) *StatePersister {
	return &StatePersister{
		svc:   svc,
		base:  *cfg,
		store: store,
	}
}

// Persist saves the store's current snapshot. The snapshot is read under the
// persister's lock so the last call to finish always writes the newest state.
func (p *StatePersister) Persist() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.store.Get()
	if p.saved && state == p.lastSaved {
		return nil
	}

	cfg := p.base
	cfg.Carousel.SetState(state)
	if err := p.svc.Save(&cfg); err != nil {
		return fmt.Errorf("failed to persist carousel state: %w", err)
	}

	p.lastSaved = state
	p.saved = true
	return nil
}

// Reload reads the state file and, when it holds a state this persister did
// not write itself, stores it. It reports whether the store changed.
func (p *StatePersister) Reload() (carousel.State, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := p.svc.LoadFromPath(p.svc.Path())
	if errors.Is(err, config.ErrEmptyConfig) {
		// Caught between truncate and write, the next change event brings the content
		return p.store.Get(), false, nil
	}
	if err != nil {
		return p.store.Get(), false, err
	}

	state := cfg.Carousel.State()
	if p.saved && state == p.lastSaved {
		return state, false, nil
	}
	if state == p.store.Get() {
		return state, false, nil
	}

	log.Printf("Reloaded carousel state from %s: %+v", p.svc.Path(), state)
	p.store.Set(state)
	p.lastSaved = state
	p.saved = true
	return state, true, nil
}

// MarkSaved records s as the state currently on disk, e.g. right after loading it.
func (p *StatePersister) MarkSaved(s carousel.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSaved = s
	p.saved = true
}

// IsSaved reports whether s is the last state written to or read from disk
func (p *StatePersister) IsSaved(s carousel.State) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saved && p.lastSaved == s
}

// Path returns the state file the persister writes to
func (p *StatePersister) Path() string {
	return p.svc.Path()
}
