// Package gate resolves the privileged property-manager principal and
// enforces single-writer authorization on the rental ledger's mutating
// operations. One owner address controls who the manager is; the
// manager is the only caller the ledger accepts.
package gate

import (
	"sync"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Gate holds the owner and the currently configured property manager.
type Gate struct {
	mu      sync.RWMutex
	owner   shares.Address
	manager shares.Address
}

// New creates a gate with the given owner and initial manager. Both
// must be non-zero.
func New(owner, manager shares.Address) (*Gate, error) {
	if owner.IsZero() {
		return nil, ErrZeroOwner
	}
	if manager.IsZero() {
		return nil, ErrZeroManager
	}
	return &Gate{owner: owner, manager: manager}, nil
}

// Manager returns the currently configured property manager.
func (g *Gate) Manager() shares.Address {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.manager
}

// SetManager rotates the manager principal. Only the owner may do
// this, and the new manager must be non-zero.
func (g *Gate) SetManager(caller, next shares.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if caller != g.owner {
		return ErrNotOwner
	}
	if next.IsZero() {
		return ErrZeroManager
	}
	g.manager = next
	return nil
}

// Require returns ErrNotManager unless the caller is the current
// property manager.
func (g *Gate) Require(caller shares.Address) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if caller != g.manager {
		return ErrNotManager
	}
	return nil
}
