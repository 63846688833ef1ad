// Package reserve implements the earmarked reserve funds kept per
// rental property. Each property carries two funds, maintenance and
// vacancy, with a configured cap, a current balance, and a deficit
// (cap minus balance, floored at zero). Funds can be topped up only up
// to the deficit and drained only by an authorized withdrawal.
package reserve

import (
	"fmt"

	"github.com/rentrollorg/librentroll-go/settle"
	"github.com/rentrollorg/librentroll-go/shares"
)

// Kind identifies which of the two reserve funds a Fund instance is.
type Kind int

const (
	// Maintenance is the repairs and upkeep reserve.
	Maintenance Kind = iota
	// Vacancy is the lost-rent buffer for vacant periods.
	Vacancy
)

// String returns a human-readable name for the fund kind.
func (k Kind) String() string {
	switch k {
	case Maintenance:
		return "maintenance"
	case Vacancy:
		return "vacancy"
	default:
		return "unknown"
	}
}

// State is the stored balance sheet of one property's fund.
type State struct {
	Cap     uint64
	Balance uint64
}

// Deficit returns cap minus balance, floored at zero.
func (s State) Deficit() uint64 {
	if s.Balance >= s.Cap {
		return 0
	}
	return s.Cap - s.Balance
}

// Fund is one reserve fund of one kind over a Store.
type Fund struct {
	kind  Kind
	store Store
}

// NewFund creates a fund of the given kind over the store.
func NewFund(kind Kind, store Store) *Fund {
	return &Fund{kind: kind, store: store}
}

// Kind returns the fund's kind.
func (f *Fund) Kind() Kind { return f.kind }

// SetCap configures the target balance for a property's fund. A cap
// below the current balance is rejected; lowering must wait until the
// balance has been drawn down.
func (f *Fund) SetCap(propertyID shares.PropertyID, cap uint64) error {
	if cap == 0 {
		return ErrZeroCap
	}
	state, err := f.store.Get(propertyID)
	if err != nil {
		return err
	}
	if cap < state.Balance {
		return fmt.Errorf("%w: cap %d, balance %d", ErrCapBelowBalance, cap, state.Balance)
	}
	state.Cap = cap
	return f.store.Put(propertyID, state)
}

// Check returns the property's configured cap, current balance, and
// deficit. An unconfigured property reports all zeros.
func (f *Fund) Check(propertyID shares.PropertyID) (cap, balance, deficit uint64, err error) {
	state, err := f.store.Get(propertyID)
	if err != nil {
		return 0, 0, 0, err
	}
	return state.Cap, state.Balance, state.Deficit(), nil
}

// Restore credits a top-up into the fund. The amount must be positive
// and must not exceed the current deficit; a full fund accepts nothing.
func (f *Fund) Restore(propertyID shares.PropertyID, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	state, err := f.store.Get(propertyID)
	if err != nil {
		return err
	}
	deficit := state.Deficit()
	if deficit == 0 {
		return ErrFundFull
	}
	if amount > deficit {
		return fmt.Errorf("%w: amount %d, deficit %d", ErrExceedsDeficit, amount, deficit)
	}
	state.Balance += amount
	return f.store.Put(propertyID, state)
}

// Withdraw debits the fund and pays the amount to the recipient
// through the settlement payer. The balance is committed before the
// outbound payment and restored if the payment fails.
func (f *Fund) Withdraw(propertyID shares.PropertyID, amount uint64, recipient shares.Address, payer settle.Payer) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if recipient.IsZero() {
		return ErrZeroRecipient
	}
	state, err := f.store.Get(propertyID)
	if err != nil {
		return err
	}
	if amount > state.Balance {
		return fmt.Errorf("%w: amount %d, balance %d", ErrInsufficientBalance, amount, state.Balance)
	}

	before := state
	state.Balance -= amount
	if err := f.store.Put(propertyID, state); err != nil {
		return err
	}

	batch := []settle.Payment{{To: recipient, Amount: amount}}
	if err := payer.PayBatch(batch); err != nil {
		// Compensating restore: the debit is rolled back when the
		// outbound payment does not complete.
		if putErr := f.store.Put(propertyID, before); putErr != nil {
			return fmt.Errorf("%w: %w (rollback failed: %w)", ErrWithdrawFailed, err, putErr)
		}
		return fmt.Errorf("%w: %w", ErrWithdrawFailed, err)
	}
	return nil
}
