package shares

import (
	"errors"
	"fmt"
)

// Registry is the share ledger over a Store. It issues property tokens
// and moves shares between holders while preserving total supply.
type Registry struct {
	store Store
}

// NewRegistry creates a registry over the given store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Issue creates the fungible-share token for a property, assigning the
// full supply to the initial holder. Issuing twice for the same
// property fails.
func (r *Registry) Issue(propertyID PropertyID, totalShares uint64, initialHolder Address) error {
	if totalShares == 0 {
		return ErrZeroSupply
	}
	if initialHolder.IsZero() {
		return fmt.Errorf("%w: initial holder", ErrZeroAddress)
	}
	if _, err := r.store.GetRegistry(propertyID); err == nil {
		return ErrAlreadyIssued
	}

	state := &RegistryState{
		PropertyID:  propertyID,
		TotalShares: totalShares,
		Holdings:    []Holding{{Address: initialHolder, Shares: totalShares}},
	}
	return r.store.PutRegistry(state)
}

// Transfer moves shares between holders. Holdings that reach zero are
// removed from the registry.
func (r *Registry) Transfer(propertyID PropertyID, from, to Address, amount uint64) error {
	if amount == 0 {
		return ErrZeroShares
	}
	if from.IsZero() {
		return fmt.Errorf("%w: sender", ErrZeroAddress)
	}
	if to.IsZero() {
		return fmt.Errorf("%w: recipient", ErrZeroAddress)
	}

	state, err := r.store.GetRegistry(propertyID)
	if err != nil {
		return err
	}

	fromIdx, fromHolding := state.FindHolding(from)
	if fromHolding == nil || fromHolding.Shares < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, heldShares(fromHolding), amount)
	}

	fromHolding.Shares -= amount
	if _, toHolding := state.FindHolding(to); toHolding != nil {
		toHolding.Shares += amount
	} else {
		state.Holdings = append(state.Holdings, Holding{Address: to, Shares: amount})
	}
	if fromHolding.Shares == 0 {
		state.Holdings = append(state.Holdings[:fromIdx], state.Holdings[fromIdx+1:]...)
	}

	if err := state.validateConservation(); err != nil {
		return err
	}
	return r.store.PutRegistry(state)
}

// Exists reports whether a token has been issued for the property.
func (r *Registry) Exists(propertyID PropertyID) (bool, error) {
	_, err := r.store.GetRegistry(propertyID)
	if errors.Is(err, ErrNotIssued) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TotalSupply returns the total issued shares for the property.
func (r *Registry) TotalSupply(propertyID PropertyID) (uint64, error) {
	state, err := r.store.GetRegistry(propertyID)
	if err != nil {
		return 0, err
	}
	return state.TotalShares, nil
}

// BalanceOf returns the number of shares held by an address. An
// address with no holding has a balance of zero.
func (r *Registry) BalanceOf(addr Address, propertyID PropertyID) (uint64, error) {
	state, err := r.store.GetRegistry(propertyID)
	if err != nil {
		return 0, err
	}
	_, h := state.FindHolding(addr)
	return heldShares(h), nil
}

// Holders returns all current holders of the property's shares.
func (r *Registry) Holders(propertyID PropertyID) ([]Holding, error) {
	state, err := r.store.GetRegistry(propertyID)
	if err != nil {
		return nil, err
	}
	return state.Holdings, nil
}

func heldShares(h *Holding) uint64 {
	if h == nil {
		return 0
	}
	return h.Shares
}
