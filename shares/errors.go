package shares

import "errors"

var (
	// ErrAlreadyIssued indicates the property token already exists.
	ErrAlreadyIssued = errors.New("shares: property already issued")

	// ErrNotIssued indicates no token has been issued for the property.
	ErrNotIssued = errors.New("shares: property not issued")

	// ErrZeroSupply indicates a total supply of zero.
	ErrZeroSupply = errors.New("shares: zero total supply")

	// ErrZeroShares indicates a share amount of zero.
	ErrZeroShares = errors.New("shares: zero share amount")

	// ErrZeroAddress indicates the zero address was used where a real
	// holder is required.
	ErrZeroAddress = errors.New("shares: zero address")

	// ErrInsufficientShares indicates the sender holds fewer shares
	// than the transfer amount.
	ErrInsufficientShares = errors.New("shares: insufficient shares")

	// ErrShareConservation indicates shares were created or destroyed.
	ErrShareConservation = errors.New("shares: share conservation violated")

	// ErrInvalidRegistryData indicates stored registry data is malformed.
	ErrInvalidRegistryData = errors.New("shares: invalid registry data")

	// ErrTooManyHoldings indicates the holdings list exceeds the codec limit.
	ErrTooManyHoldings = errors.New("shares: too many holdings")
)
