// Package rental implements the rental lifecycle and reserve
// accounting state machine for tokenized rental properties.
//
// The ledger owns each property's rental record and escrow balance and
// orchestrates the full cycle: registration pushes reserve caps into
// the maintenance and vacancy funds, initiation splits the tenant's
// payment between reserve top-ups and the distributable rent pool, one
// distribution per elapsed day pays the pool out pro-rata to the
// fractional owners, and termination refunds whatever remains to the
// tenant and returns the record to the vacant state.
//
// Exact accounting is the governing rule: value is never created or
// destroyed, division truncates toward escrow, and every operation
// either fully commits or leaves no trace. All accounting state is
// committed before any outbound settlement; a failed settlement rolls
// the commit back.
package rental

import (
	"fmt"
	"sync"
	"time"

	"github.com/rentrollorg/librentroll-go/gate"
	"github.com/rentrollorg/librentroll-go/settle"
	"github.com/rentrollorg/librentroll-go/shares"
)

// SecondsPerDay is the length of one distribution cycle window.
const SecondsPerDay = 86400

// ShareLedger is the query surface of the fractional-ownership share
// ledger the rental ledger depends on.
type ShareLedger interface {
	// Exists reports whether a token has been issued for the property.
	Exists(propertyID shares.PropertyID) (bool, error)

	// TotalSupply returns the total issued shares for the property.
	TotalSupply(propertyID shares.PropertyID) (uint64, error)

	// BalanceOf returns the shares held by an address.
	BalanceOf(addr shares.Address, propertyID shares.PropertyID) (uint64, error)

	// Holders returns all current holders of the property's shares.
	Holders(propertyID shares.PropertyID) ([]shares.Holding, error)
}

// ReserveFund is the narrow restore/query surface the rental ledger
// consumes from each of the two per-property reserve funds.
type ReserveFund interface {
	// SetCap configures the fund's target balance for a property.
	SetCap(propertyID shares.PropertyID, cap uint64) error

	// Check returns the fund's cap, balance, and deficit for a property.
	Check(propertyID shares.PropertyID) (cap, balance, deficit uint64, err error)

	// Restore credits a top-up, up to the current deficit.
	Restore(propertyID shares.PropertyID, amount uint64) error
}

// Payout is one owner's payment within a distribution cycle.
type Payout struct {
	Owner  shares.Address
	Amount uint64
}

// Deps collects the collaborators a Ledger is built from.
type Deps struct {
	Shares      ShareLedger
	Maintenance ReserveFund
	Vacancy     ReserveFund
	Gate        *gate.Gate
	Payer       settle.Payer
	Store       Store

	// Notifier receives lifecycle events. Optional; defaults to NopNotifier.
	Notifier Notifier

	// Now supplies the clock for cycle gating. Optional; defaults to time.Now.
	Now func() time.Time
}

// Ledger is the rental accounting engine. All public operations are
// serialized by one mutex held for the whole operation, which is also
// the reentrancy guard: no call can re-enter the ledger while an
// outbound settlement is in flight.
type Ledger struct {
	mu          sync.Mutex
	shares      ShareLedger
	maintenance ReserveFund
	vacancy     ReserveFund
	gate        *gate.Gate
	payer       settle.Payer
	store       Store
	notifier    Notifier
	now         func() time.Time
}

// New creates a rental ledger from its collaborators.
func New(deps Deps) (*Ledger, error) {
	switch {
	case deps.Shares == nil:
		return nil, fmt.Errorf("%w: share ledger", ErrNilParam)
	case deps.Maintenance == nil:
		return nil, fmt.Errorf("%w: maintenance fund", ErrNilParam)
	case deps.Vacancy == nil:
		return nil, fmt.Errorf("%w: vacancy fund", ErrNilParam)
	case deps.Gate == nil:
		return nil, fmt.Errorf("%w: access gate", ErrNilParam)
	case deps.Payer == nil:
		return nil, fmt.Errorf("%w: payer", ErrNilParam)
	case deps.Store == nil:
		return nil, fmt.Errorf("%w: store", ErrNilParam)
	}

	l := &Ledger{
		shares:      deps.Shares,
		maintenance: deps.Maintenance,
		vacancy:     deps.Vacancy,
		gate:        deps.Gate,
		payer:       deps.Payer,
		store:       deps.Store,
		notifier:    deps.Notifier,
		now:         deps.Now,
	}
	if l.notifier == nil {
		l.notifier = NopNotifier{}
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l, nil
}

// Property returns a copy of the rental record for a property.
func (l *Ledger) Property(propertyID shares.PropertyID) (*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.GetRecord(propertyID)
}

// Escrow returns the undistributed rent held for a property.
func (l *Ledger) Escrow(propertyID shares.PropertyID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Escrow(propertyID)
}

// Retained returns the retained balance for a property: value withheld
// by reserve accounting during initiation, refunded to the tenant at
// termination.
func (l *Ledger) Retained(propertyID shares.PropertyID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Retained(propertyID)
}
