package shares

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketRegistries = []byte("share_registries")

// BoltStore persists share registries in a bbolt database. The database
// is shared with the other ledger stores; this store owns only its own
// bucket.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// NewBoltStore creates the registry bucket if needed and returns a
// store over the given database.
func NewBoltStore(db *bbolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRegistries)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("shares: create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// GetRegistry retrieves the registry state for a property.
func (s *BoltStore) GetRegistry(propertyID PropertyID) (*RegistryState, error) {
	var state *RegistryState
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRegistries).Get(propertyID[:])
		if data == nil {
			return ErrNotIssued
		}
		var err error
		state, err = DeserializeRegistry(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// PutRegistry stores the registry state.
func (s *BoltStore) PutRegistry(state *RegistryState) error {
	data, err := SerializeRegistry(state)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRegistries).Put(state.PropertyID[:], data); err != nil {
			return fmt.Errorf("shares: put registry: %w", err)
		}
		return nil
	})
}
