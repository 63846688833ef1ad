package rental

import "github.com/rentrollorg/librentroll-go/shares"

// PeriodInitiated is emitted when a rental period is opened.
type PeriodInitiated struct {
	PropertyID shares.PropertyID
	Tenant     shares.Address
	Start      int64 // unix seconds
	PeriodDays uint64
}

// RentDistributed is emitted after a successful distribution cycle.
// Amounts[i] is the payout for Owners[i].
type RentDistributed struct {
	PropertyID shares.PropertyID
	Owners     []shares.Address
	Amounts    []uint64
}

// PeriodTerminated is emitted when a rental period ends, whether by
// explicit termination or by the final distribution cycle.
type PeriodTerminated struct {
	PropertyID shares.PropertyID
	Tenant     shares.Address
	When       int64 // unix seconds
	Refunded   uint64
}

// Notifier receives ledger events. Notifications fire only after an
// operation has fully committed and settled; a rolled-back operation
// emits nothing.
type Notifier interface {
	NotifyPeriodInitiated(e PeriodInitiated)
	NotifyRentDistributed(e RentDistributed)
	NotifyPeriodTerminated(e PeriodTerminated)
}

// NopNotifier discards all events.
type NopNotifier struct{}

// Compile-time interface check.
var _ Notifier = NopNotifier{}

// NotifyPeriodInitiated discards the event.
func (NopNotifier) NotifyPeriodInitiated(PeriodInitiated) {}

// NotifyRentDistributed discards the event.
func (NopNotifier) NotifyRentDistributed(RentDistributed) {}

// NotifyPeriodTerminated discards the event.
func (NopNotifier) NotifyPeriodTerminated(PeriodTerminated) {}
