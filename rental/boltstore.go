package rental

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/rentrollorg/librentroll-go/shares"
)

var (
	bucketRecords  = []byte("rental_records")
	bucketEscrow   = []byte("rental_escrow")
	bucketRetained = []byte("rental_retained")
)

// BoltStore persists rental state in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath. The
// parent directory is created if it does not exist. The underlying
// database is exposed through DB so the share and reserve stores can
// live in the same file.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("rental: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("rental: open bolt db: %w", err)
	}

	store, err := NewBoltStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewBoltStore creates the rental buckets if needed and returns a
// store over an already-open database.
func NewBoltStore(db *bbolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketEscrow, bucketRetained} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rental: create buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// DB returns the underlying database.
func (s *BoltStore) DB() *bbolt.DB { return s.db }

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// GetRecord retrieves a property's rental record.
func (s *BoltStore) GetRecord(propertyID shares.PropertyID) (*Record, error) {
	var rec *Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get(propertyID[:])
		if data == nil {
			return ErrNotListed
		}
		var err error
		rec, err = DeserializeRecord(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// PutRecord stores a rental record.
func (s *BoltStore) PutRecord(rec *Record) error {
	data := SerializeRecord(rec)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRecords).Put(rec.PropertyID[:], data); err != nil {
			return fmt.Errorf("boltstore: put record: %w", err)
		}
		return nil
	})
}

// Escrow returns the undistributed rent held for a property.
func (s *BoltStore) Escrow(propertyID shares.PropertyID) (uint64, error) {
	return s.getBalance(bucketEscrow, propertyID)
}

// SetEscrow sets the escrow balance for a property.
func (s *BoltStore) SetEscrow(propertyID shares.PropertyID, amount uint64) error {
	return s.setBalance(bucketEscrow, propertyID, amount)
}

// Retained returns the retained balance for a property.
func (s *BoltStore) Retained(propertyID shares.PropertyID) (uint64, error) {
	return s.getBalance(bucketRetained, propertyID)
}

// SetRetained sets the retained balance for a property.
func (s *BoltStore) SetRetained(propertyID shares.PropertyID, amount uint64) error {
	return s.setBalance(bucketRetained, propertyID, amount)
}

func (s *BoltStore) getBalance(bucket []byte, propertyID shares.PropertyID) (uint64, error) {
	var amount uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucket).Get(propertyID[:])
		if data == nil {
			return nil // absent reads as zero
		}
		if len(data) != 8 {
			return fmt.Errorf("%w: balance must be 8 bytes", ErrInvalidRecordData)
		}
		amount = binary.BigEndian.Uint64(data)
		return nil
	})
	return amount, err
}

func (s *BoltStore) setBalance(bucket []byte, propertyID shares.PropertyID, amount uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, amount)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucket).Put(propertyID[:], buf); err != nil {
			return fmt.Errorf("boltstore: put balance: %w", err)
		}
		return nil
	})
}
