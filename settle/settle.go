// Package settle handles outbound fund settlement for the rental
// ledger. A settlement batch is the unit of delivery: it either fully
// completes or fails with no payment made, which is what lets the
// ledger commit its accounting before paying and roll back cleanly on
// failure.
package settle

import (
	"fmt"
	"sync"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Payment is one outbound transfer within a settlement batch.
type Payment struct {
	To     shares.Address
	Amount uint64
}

// Payer delivers settlement batches. Implementations must be atomic:
// a returned error means no payment in the batch was made.
type Payer interface {
	// PayBatch delivers all payments in the batch, or none of them.
	PayBatch(payments []Payment) error
}

// MemPayer is an in-memory settlement implementation for tests and
// embedding. It credits balances per address and supports injecting a
// failure for a specific address to exercise rollback paths.
type MemPayer struct {
	mu       sync.Mutex
	balances map[shares.Address]uint64
	failing  map[shares.Address]bool
}

// NewMemPayer creates a new in-memory payer.
func NewMemPayer() *MemPayer {
	return &MemPayer{
		balances: make(map[shares.Address]uint64),
		failing:  make(map[shares.Address]bool),
	}
}

// Compile-time interface check.
var _ Payer = (*MemPayer)(nil)

// FailAddress makes every batch containing a payment to addr fail.
func (p *MemPayer) FailAddress(addr shares.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing[addr] = true
}

// Balance returns the total amount credited to an address.
func (p *MemPayer) Balance(addr shares.Address) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balances[addr]
}

// PayBatch delivers all payments in the batch, or none of them.
func (p *MemPayer) PayBatch(payments []Payment) error {
	if len(payments) == 0 {
		return ErrEmptyBatch
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Validate the whole batch before crediting anything.
	for i, pay := range payments {
		if pay.To.IsZero() {
			return fmt.Errorf("%w: payment %d", ErrZeroRecipient, i)
		}
		if pay.Amount == 0 {
			return fmt.Errorf("%w: payment %d", ErrZeroAmount, i)
		}
		if p.failing[pay.To] {
			return fmt.Errorf("%w: payment %d rejected", ErrPaymentRejected, i)
		}
	}

	for _, pay := range payments {
		p.balances[pay.To] += pay.Amount
	}
	return nil
}
