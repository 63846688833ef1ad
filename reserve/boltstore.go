package reserve

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/rentrollorg/librentroll-go/shares"
)

const stateSize = 16 // cap(8) + balance(8)

// BoltStore persists fund state in a bbolt database, one bucket per
// fund kind so the two funds of a property never collide.
type BoltStore struct {
	db     *bbolt.DB
	bucket []byte
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// NewBoltStore creates the fund bucket for the given kind if needed
// and returns a store over the database.
func NewBoltStore(db *bbolt.DB, kind Kind) (*BoltStore, error) {
	bucket := []byte("reserve_" + kind.String())
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reserve: create bucket: %w", err)
	}
	return &BoltStore{db: db, bucket: bucket}, nil
}

// Get retrieves the fund state for a property.
func (s *BoltStore) Get(propertyID shares.PropertyID) (State, error) {
	var state State
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(s.bucket).Get(propertyID[:])
		if data == nil {
			return nil // unconfigured reads as zero state
		}
		if len(data) != stateSize {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidStateData, stateSize, len(data))
		}
		state.Cap = binary.BigEndian.Uint64(data[0:8])
		state.Balance = binary.BigEndian.Uint64(data[8:16])
		return nil
	})
	if err != nil {
		return State{}, err
	}
	return state, nil
}

// Put stores the fund state for a property.
func (s *BoltStore) Put(propertyID shares.PropertyID, state State) error {
	buf := make([]byte, stateSize)
	binary.BigEndian.PutUint64(buf[0:8], state.Cap)
	binary.BigEndian.PutUint64(buf[8:16], state.Balance)

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(s.bucket).Put(propertyID[:], buf); err != nil {
			return fmt.Errorf("reserve: put state: %w", err)
		}
		return nil
	})
}
