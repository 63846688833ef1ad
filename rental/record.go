package rental

import (
	"encoding/binary"
	"fmt"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Record is the per-property rental state. A record is created at
// registration in the vacant state, becomes occupied at period
// initiation, and is reset to vacant at termination. It is never
// deleted; a vacant record can be re-initiated for a new tenant.
type Record struct {
	PropertyID shares.PropertyID

	// Listed is set once at registration and never cleared.
	Listed bool

	// Occupied is true strictly between initiation and termination.
	Occupied bool

	// Tenant is the current occupant; zero when vacant.
	Tenant shares.Address

	// RentalStart is the period start in unix seconds; 0 when vacant.
	RentalStart int64

	// MaintenanceCap and VacancyCap mirror the caps pushed into the
	// two reserve funds.
	MaintenanceCap uint64
	VacancyCap     uint64

	// PeriodDays is the active period length; 0 when vacant.
	PeriodDays uint64

	// DailyRent is the per-cycle payout pool, fixed at initiation.
	// Integer division truncates; the remainder stays in escrow.
	DailyRent uint64

	// CycleCount is the number of distribution cycles already run in
	// the active period. Reaching PeriodDays terminates the period.
	CycleCount uint64
}

// resetVacant clears the occupancy fields, keeping listing and caps.
func (r *Record) resetVacant() {
	r.Occupied = false
	r.Tenant = shares.Address{}
	r.RentalStart = 0
	r.PeriodDays = 0
	r.DailyRent = 0
	r.CycleCount = 0
}

const (
	recordSize = 101 // property_id(32) + flags(1) + tenant(20) + start(8) + caps(16) + period(8) + daily(8) + cycle(8)

	flagListed   = 0x01
	flagOccupied = 0x02
)

// SerializeRecord encodes a Record to its binary storage format.
func SerializeRecord(rec *Record) []byte {
	buf := make([]byte, recordSize)
	offset := 0

	copy(buf[offset:offset+shares.PropertyIDLen], rec.PropertyID[:])
	offset += shares.PropertyIDLen

	var flags byte
	if rec.Listed {
		flags |= flagListed
	}
	if rec.Occupied {
		flags |= flagOccupied
	}
	buf[offset] = flags
	offset++

	copy(buf[offset:offset+shares.AddressLen], rec.Tenant[:])
	offset += shares.AddressLen

	binary.BigEndian.PutUint64(buf[offset:offset+8], uint64(rec.RentalStart))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:offset+8], rec.MaintenanceCap)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:offset+8], rec.VacancyCap)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:offset+8], rec.PeriodDays)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:offset+8], rec.DailyRent)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:offset+8], rec.CycleCount)

	return buf
}

// DeserializeRecord decodes binary data into a Record.
func DeserializeRecord(data []byte) (*Record, error) {
	if len(data) != recordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecordData, recordSize, len(data))
	}
	offset := 0

	rec := &Record{}
	copy(rec.PropertyID[:], data[offset:offset+shares.PropertyIDLen])
	offset += shares.PropertyIDLen

	flags := data[offset]
	offset++
	rec.Listed = flags&flagListed != 0
	rec.Occupied = flags&flagOccupied != 0

	copy(rec.Tenant[:], data[offset:offset+shares.AddressLen])
	offset += shares.AddressLen

	rec.RentalStart = int64(binary.BigEndian.Uint64(data[offset : offset+8]))
	offset += 8
	rec.MaintenanceCap = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8
	rec.VacancyCap = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8
	rec.PeriodDays = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8
	rec.DailyRent = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8
	rec.CycleCount = binary.BigEndian.Uint64(data[offset : offset+8])

	return rec, nil
}
