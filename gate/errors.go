package gate

import "errors"

var (
	// ErrNotManager indicates the caller is not the property manager.
	ErrNotManager = errors.New("gate: caller is not the property manager")

	// ErrNotOwner indicates the caller is not the gate owner.
	ErrNotOwner = errors.New("gate: caller is not the owner")

	// ErrZeroOwner indicates a zero owner address.
	ErrZeroOwner = errors.New("gate: zero owner address")

	// ErrZeroManager indicates a zero manager address.
	ErrZeroManager = errors.New("gate: zero manager address")
)
