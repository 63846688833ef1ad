package reserve

import "errors"

var (
	// ErrZeroCap indicates a cap of zero was configured.
	ErrZeroCap = errors.New("reserve: cap must be positive")

	// ErrCapBelowBalance indicates the new cap is below the current balance.
	ErrCapBelowBalance = errors.New("reserve: cap below current balance")

	// ErrZeroAmount indicates an amount of zero.
	ErrZeroAmount = errors.New("reserve: amount must be positive")

	// ErrFundFull indicates the fund already holds its full cap.
	ErrFundFull = errors.New("reserve: fund already at cap")

	// ErrExceedsDeficit indicates a top-up larger than the deficit.
	ErrExceedsDeficit = errors.New("reserve: amount exceeds deficit")

	// ErrInsufficientBalance indicates a withdrawal larger than the balance.
	ErrInsufficientBalance = errors.New("reserve: insufficient balance")

	// ErrZeroRecipient indicates a withdrawal to the zero address.
	ErrZeroRecipient = errors.New("reserve: zero recipient address")

	// ErrWithdrawFailed indicates the outbound payment did not complete.
	ErrWithdrawFailed = errors.New("reserve: withdrawal payment failed")

	// ErrInvalidStateData indicates stored fund data is malformed.
	ErrInvalidStateData = errors.New("reserve: invalid state data")
)
