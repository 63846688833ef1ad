package shares

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	registryHeaderSize = 44 // property_id(32) + total_shares(8) + num_holdings(4)
	registryEntrySize  = 28 // address(20) + shares(8)
)

// SerializeRegistry encodes a RegistryState to its binary storage format.
func SerializeRegistry(state *RegistryState) ([]byte, error) {
	if len(state.Holdings) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d holdings", ErrTooManyHoldings, len(state.Holdings))
	}
	buf := make([]byte, registryHeaderSize+registryEntrySize*len(state.Holdings))
	offset := 0

	copy(buf[offset:offset+PropertyIDLen], state.PropertyID[:])
	offset += PropertyIDLen

	binary.BigEndian.PutUint64(buf[offset:offset+8], state.TotalShares)
	offset += 8

	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(len(state.Holdings)))
	offset += 4

	for _, h := range state.Holdings {
		copy(buf[offset:offset+AddressLen], h.Address[:])
		offset += AddressLen
		binary.BigEndian.PutUint64(buf[offset:offset+8], h.Shares)
		offset += 8
	}

	return buf, nil
}

// DeserializeRegistry decodes binary data into a RegistryState.
func DeserializeRegistry(data []byte) (*RegistryState, error) {
	if len(data) < registryHeaderSize {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidRegistryData, len(data))
	}
	offset := 0

	state := &RegistryState{}
	copy(state.PropertyID[:], data[offset:offset+PropertyIDLen])
	offset += PropertyIDLen

	state.TotalShares = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	numHoldings := int(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4

	expectedSize := registryHeaderSize + registryEntrySize*numHoldings
	if len(data) != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes for %d holdings, got %d",
			ErrInvalidRegistryData, expectedSize, numHoldings, len(data))
	}

	state.Holdings = make([]Holding, numHoldings)
	for i := 0; i < numHoldings; i++ {
		copy(state.Holdings[i].Address[:], data[offset:offset+AddressLen])
		offset += AddressLen
		state.Holdings[i].Shares = binary.BigEndian.Uint64(data[offset : offset+8])
		offset += 8
	}

	return state, nil
}
