// Package shares implements the fractional-ownership share ledger for
// tokenized rental properties.
//
// Each property is a fungible-share token identified by a PropertyID.
// The registry tracks total issued shares and every holder's balance,
// and answers the existence/supply/balance queries the rental ledger
// depends on. Share conservation is enforced on every mutation: shares
// are never created or destroyed by a transfer.
package shares

import (
	"crypto/sha256"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

const (
	// PropertyIDLen is the length of a property identifier.
	PropertyIDLen = 32

	// AddressLen is the length of a P2PKH address hash.
	AddressLen = 20
)

// PropertyID identifies one tokenized property for its whole lifetime.
type PropertyID [PropertyIDLen]byte

// PropertyIDFromDeed derives a PropertyID as SHA256 of a canonical deed
// reference string (title number, registry URI, or similar).
func PropertyIDFromDeed(deed string) PropertyID {
	return sha256.Sum256([]byte(deed))
}

// Address is a 20-byte P2PKH public key hash identifying an owner,
// tenant, or manager. The zero value means "no one".
type Address [AddressLen]byte

// AddressFromPublicKey derives the P2PKH address hash for a public key:
// RIPEMD160(SHA256(compressed pubkey)).
func AddressFromPublicKey(pub *ec.PublicKey) Address {
	var addr Address
	copy(addr[:], bsvhash.Hash160(pub.Compressed()))
	return addr
}

// IsZero reports whether the address is the zero value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Holding is one holder's entry in a property's share registry.
type Holding struct {
	Address Address
	Shares  uint64
}

// RegistryState is the full share-ownership state of one property.
type RegistryState struct {
	PropertyID  PropertyID
	TotalShares uint64
	Holdings    []Holding
}

// FindHolding returns the index and entry for the given address, or -1
// if the address holds no shares.
func (s *RegistryState) FindHolding(addr Address) (int, *Holding) {
	for i := range s.Holdings {
		if s.Holdings[i].Address == addr {
			return i, &s.Holdings[i]
		}
	}
	return -1, nil
}

// validateConservation checks that the holdings sum to TotalShares.
func (s *RegistryState) validateConservation() error {
	var sum uint64
	for _, h := range s.Holdings {
		sum += h.Shares
	}
	if sum != s.TotalShares {
		return ErrShareConservation
	}
	return nil
}
