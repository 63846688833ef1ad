package rental

import (
	"sync"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Store persists rental records and the two per-property money
// balances the ledger owns: escrow (undistributed rent) and retained
// (value withheld by reserve accounting, refunded at termination).
// Balances with no stored entry read as zero.
type Store interface {
	// GetRecord retrieves a property's rental record.
	// Returns ErrNotListed if the property was never registered.
	GetRecord(propertyID shares.PropertyID) (*Record, error)

	// PutRecord stores a rental record, overwriting any previous one.
	PutRecord(rec *Record) error

	// Escrow returns the undistributed rent held for a property.
	Escrow(propertyID shares.PropertyID) (uint64, error)

	// SetEscrow sets the escrow balance for a property.
	SetEscrow(propertyID shares.PropertyID, amount uint64) error

	// Retained returns the retained balance for a property.
	Retained(propertyID shares.PropertyID) (uint64, error)

	// SetRetained sets the retained balance for a property.
	SetRetained(propertyID shares.PropertyID, amount uint64) error
}

// MemStore is an in-memory implementation of Store.
type MemStore struct {
	mu       sync.RWMutex
	records  map[shares.PropertyID]*Record
	escrow   map[shares.PropertyID]uint64
	retained map[shares.PropertyID]uint64
}

// NewMemStore creates a new in-memory rental store.
func NewMemStore() *MemStore {
	return &MemStore{
		records:  make(map[shares.PropertyID]*Record),
		escrow:   make(map[shares.PropertyID]uint64),
		retained: make(map[shares.PropertyID]uint64),
	}
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// GetRecord retrieves a property's rental record.
func (s *MemStore) GetRecord(propertyID shares.PropertyID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[propertyID]
	if !ok {
		return nil, ErrNotListed
	}
	cp := *rec
	return &cp, nil
}

// PutRecord stores a rental record.
func (s *MemStore) PutRecord(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.records[rec.PropertyID] = &cp
	return nil
}

// Escrow returns the undistributed rent held for a property.
func (s *MemStore) Escrow(propertyID shares.PropertyID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.escrow[propertyID], nil
}

// SetEscrow sets the escrow balance for a property.
func (s *MemStore) SetEscrow(propertyID shares.PropertyID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.escrow[propertyID] = amount
	return nil
}

// Retained returns the retained balance for a property.
func (s *MemStore) Retained(propertyID shares.PropertyID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.retained[propertyID], nil
}

// SetRetained sets the retained balance for a property.
func (s *MemStore) SetRetained(propertyID shares.PropertyID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retained[propertyID] = amount
	return nil
}
