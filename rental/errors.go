package rental

import "errors"

// Precondition errors: bad input or wrong lifecycle state. The
// operation is rejected with no state change.
var (
	// ErrUnknownProperty indicates no share token exists for the property.
	ErrUnknownProperty = errors.New("rental: property not found in share ledger")

	// ErrAlreadyListed indicates the property is already registered.
	ErrAlreadyListed = errors.New("rental: property already listed")

	// ErrNotListed indicates the property has not been registered.
	ErrNotListed = errors.New("rental: property not listed")

	// ErrOccupied indicates the property already has an active rental period.
	ErrOccupied = errors.New("rental: property is occupied")

	// ErrVacant indicates the property has no active rental period.
	ErrVacant = errors.New("rental: property is vacant")

	// ErrZeroAddress indicates the zero address was used where a real
	// principal is required.
	ErrZeroAddress = errors.New("rental: zero address")

	// ErrZeroCap indicates a reserve cap of zero at registration.
	ErrZeroCap = errors.New("rental: reserve caps must be positive")

	// ErrZeroPayment indicates an inbound payment of zero.
	ErrZeroPayment = errors.New("rental: payment must be positive")

	// ErrZeroPeriod indicates a rental period of zero days.
	ErrZeroPeriod = errors.New("rental: period must be at least one day")

	// ErrContributionExceedsDeficit indicates a reserve contribution
	// larger than the fund's current deficit.
	ErrContributionExceedsDeficit = errors.New("rental: contribution exceeds reserve deficit")

	// ErrContributionExceedsPayment indicates a reserve contribution
	// larger than the payment remaining to draw it from.
	ErrContributionExceedsPayment = errors.New("rental: contribution exceeds remaining payment")

	// ErrInsufficientPayment indicates the payment cannot cover a
	// reserve deficit being settled from it.
	ErrInsufficientPayment = errors.New("rental: payment cannot cover reserve deficit")

	// ErrInsufficientEscrow indicates the escrow balance cannot cover
	// one daily distribution.
	ErrInsufficientEscrow = errors.New("rental: insufficient escrow for distribution")

	// ErrCycleWindowClosed indicates the distribution was attempted
	// after its cycle window had already passed.
	ErrCycleWindowClosed = errors.New("rental: distribution cycle window closed")

	// ErrNoOwners indicates an empty owner list.
	ErrNoOwners = errors.New("rental: no owners to distribute to")

	// ErrZeroTotalShares indicates the share ledger reports zero supply.
	ErrZeroTotalShares = errors.New("rental: zero total shares")
)

// Invariant violations: accounting inconsistencies that indicate a bug
// rather than bad input. Never catch and retry these.
var (
	// ErrPayoutExceedsDaily indicates the summed payouts exceed the
	// daily rent they are drawn from.
	ErrPayoutExceedsDaily = errors.New("rental: total payout exceeds daily rent")

	// ErrRentReconstruction indicates the reconstructed rent
	// (daily rent times period) exceeds the deposited remainder.
	ErrRentReconstruction = errors.New("rental: reconstructed rent exceeds deposit")
)

var (
	// ErrTransferFailed indicates an outbound settlement did not
	// complete; all state changes of the operation were rolled back.
	ErrTransferFailed = errors.New("rental: settlement transfer failed")

	// ErrInvalidRecordData indicates stored record data is malformed.
	ErrInvalidRecordData = errors.New("rental: invalid record data")

	// ErrNilParam indicates a required dependency or parameter is nil.
	ErrNilParam = errors.New("rental: required parameter is nil")
)
