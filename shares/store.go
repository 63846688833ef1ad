package shares

import "sync"

// Store persists per-property registry state.
type Store interface {
	// GetRegistry retrieves the registry state for a property.
	// Returns ErrNotIssued if no token exists for the property.
	GetRegistry(propertyID PropertyID) (*RegistryState, error)

	// PutRegistry stores the registry state, overwriting any previous
	// state for the same property.
	PutRegistry(state *RegistryState) error
}

// MemStore is an in-memory implementation of Store for testing and
// embedding.
type MemStore struct {
	mu         sync.RWMutex
	registries map[PropertyID]*RegistryState
}

// NewMemStore creates a new in-memory registry store.
func NewMemStore() *MemStore {
	return &MemStore{registries: make(map[PropertyID]*RegistryState)}
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// GetRegistry retrieves the registry state for a property.
func (s *MemStore) GetRegistry(propertyID PropertyID) (*RegistryState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.registries[propertyID]
	if !ok {
		return nil, ErrNotIssued
	}
	// Return a copy so callers cannot mutate stored state.
	cp := *state
	cp.Holdings = make([]Holding, len(state.Holdings))
	copy(cp.Holdings, state.Holdings)
	return &cp, nil
}

// PutRegistry stores the registry state.
func (s *MemStore) PutRegistry(state *RegistryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *state
	cp.Holdings = make([]Holding, len(state.Holdings))
	copy(cp.Holdings, state.Holdings)
	s.registries[state.PropertyID] = &cp
	return nil
}
