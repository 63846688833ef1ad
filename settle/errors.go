package settle

import "errors"

var (
	// ErrEmptyBatch indicates a settlement batch with no payments.
	ErrEmptyBatch = errors.New("settle: empty settlement batch")

	// ErrZeroRecipient indicates a payment to the zero address.
	ErrZeroRecipient = errors.New("settle: zero recipient address")

	// ErrZeroAmount indicates a payment of zero.
	ErrZeroAmount = errors.New("settle: zero payment amount")

	// ErrPaymentRejected indicates the settlement backend refused a payment.
	ErrPaymentRejected = errors.New("settle: payment rejected")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("settle: required parameter is nil")

	// ErrInsufficientFunds indicates the funding inputs cannot cover
	// the payouts plus fees.
	ErrInsufficientFunds = errors.New("settle: insufficient funds")

	// ErrScriptBuild indicates locking script construction failed.
	ErrScriptBuild = errors.New("settle: script build failed")
)
