package reserve

import (
	"sync"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Store persists per-property fund state. A property with no stored
// state reads back as the zero State (cap 0, balance 0); reserve
// accounts come into being when the rental ledger first pushes a cap.
type Store interface {
	// Get retrieves the fund state for a property.
	Get(propertyID shares.PropertyID) (State, error)

	// Put stores the fund state for a property.
	Put(propertyID shares.PropertyID, state State) error
}

// MemStore is an in-memory implementation of Store.
type MemStore struct {
	mu     sync.RWMutex
	states map[shares.PropertyID]State
}

// NewMemStore creates a new in-memory fund store.
func NewMemStore() *MemStore {
	return &MemStore{states: make(map[shares.PropertyID]State)}
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// Get retrieves the fund state for a property.
func (s *MemStore) Get(propertyID shares.PropertyID) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[propertyID], nil
}

// Put stores the fund state for a property.
func (s *MemStore) Put(propertyID shares.PropertyID, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[propertyID] = state
	return nil
}
