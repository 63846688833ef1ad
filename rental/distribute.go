package rental

import (
	"fmt"

	"github.com/rentrollorg/librentroll-go/settle"
	"github.com/rentrollorg/librentroll-go/shares"
)

// Distribute runs one distribution cycle, paying the daily rent pool
// pro-rata to the given owners. The owner list is trusted as supplied:
// duplicates or omissions are the caller's responsibility. Use
// DistributeAll to derive the list from the share ledger instead.
//
// Per-share amounts truncate toward escrow; the rounding remainder is
// never paid out. When the cycle counter reaches the period length,
// the period terminates within the same operation and the tenant's
// refund joins the same settlement batch, so the whole cycle remains
// all-or-nothing.
func (l *Ledger) Distribute(caller shares.Address, propertyID shares.PropertyID, owners []shares.Address) ([]Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return nil, err
	}
	return l.distribute(propertyID, owners)
}

// DistributeAll runs one distribution cycle over the owner list
// derived from the share ledger, removing the trust the plain
// Distribute places in the caller's enumeration.
func (l *Ledger) DistributeAll(caller shares.Address, propertyID shares.PropertyID) ([]Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return nil, err
	}

	holdings, err := l.shares.Holders(propertyID)
	if err != nil {
		return nil, err
	}
	owners := make([]shares.Address, len(holdings))
	for i, h := range holdings {
		owners[i] = h.Address
	}
	return l.distribute(propertyID, owners)
}

// distribute is the shared cycle body. The caller holds l.mu and has
// passed the gate.
func (l *Ledger) distribute(propertyID shares.PropertyID, owners []shares.Address) ([]Payout, error) {
	rec, err := l.store.GetRecord(propertyID)
	if err != nil {
		return nil, err
	}
	if !rec.Occupied {
		return nil, ErrVacant
	}
	if len(owners) == 0 {
		return nil, ErrNoOwners
	}

	escrow, err := l.store.Escrow(propertyID)
	if err != nil {
		return nil, err
	}
	if escrow < rec.DailyRent {
		return nil, fmt.Errorf("%w: escrow %d, daily rent %d",
			ErrInsufficientEscrow, escrow, rec.DailyRent)
	}

	// Cycle gate: after the first cycle, cycle N+1 is accepted only up
	// to N day-lengths past the period start. Early and on-time calls
	// pass; once the window has elapsed the cycle can no longer be
	// paid. (Late callers must terminate instead.)
	now := l.now().Unix()
	if rec.CycleCount > 0 {
		deadline := rec.RentalStart + int64(rec.CycleCount)*SecondsPerDay
		if now > deadline {
			return nil, fmt.Errorf("%w: cycle %d deadline %d, now %d",
				ErrCycleWindowClosed, rec.CycleCount, deadline, now)
		}
	}

	supply, err := l.shares.TotalSupply(propertyID)
	if err != nil {
		return nil, err
	}
	if supply == 0 {
		return nil, ErrZeroTotalShares
	}
	perShare := rec.DailyRent / supply

	payouts := make([]Payout, len(owners))
	var totalPayout uint64
	for i, owner := range owners {
		if owner.IsZero() {
			return nil, fmt.Errorf("%w: owner %d", ErrZeroAddress, i)
		}
		balance, err := l.shares.BalanceOf(owner, propertyID)
		if err != nil {
			return nil, err
		}
		payouts[i] = Payout{Owner: owner, Amount: balance * perShare}
		totalPayout += payouts[i].Amount
	}

	// Fatal accounting inconsistency, not bad input: the pro-rata sum
	// can only exceed the pool if share accounting is corrupt.
	if totalPayout > rec.DailyRent {
		return nil, fmt.Errorf("%w: payout %d, daily rent %d",
			ErrPayoutExceedsDaily, totalPayout, rec.DailyRent)
	}

	retained, err := l.store.Retained(propertyID)
	if err != nil {
		return nil, err
	}

	// Snapshot for the compensating rollback.
	recBefore := *rec
	escrowBefore, retainedBefore := escrow, retained

	// Commit phase: all accounting lands before settlement, so any
	// reentrant observer sees post-mutation state.
	rec.CycleCount++
	escrow -= totalPayout
	final := rec.CycleCount == rec.PeriodDays

	var refund uint64
	tenant := rec.Tenant
	if final {
		refund = escrow + retained
		rec.resetVacant()
		escrow, retained = 0, 0
	}

	if err := l.store.PutRecord(rec); err != nil {
		return nil, err
	}
	if err := l.store.SetEscrow(propertyID, escrow); err != nil {
		return nil, err
	}
	if err := l.store.SetRetained(propertyID, retained); err != nil {
		return nil, err
	}

	// Settlement phase: one batch carries every owner payout and, on
	// the final cycle, the tenant refund.
	batch := make([]settle.Payment, 0, len(payouts)+1)
	for _, p := range payouts {
		if p.Amount > 0 {
			batch = append(batch, settle.Payment{To: p.Owner, Amount: p.Amount})
		}
	}
	if final && refund > 0 {
		batch = append(batch, settle.Payment{To: tenant, Amount: refund})
	}
	if len(batch) > 0 {
		if err := l.payer.PayBatch(batch); err != nil {
			if rbErr := l.rollback(&recBefore, escrowBefore, retainedBefore); rbErr != nil {
				return nil, fmt.Errorf("%w: %w (rollback failed: %w)", ErrTransferFailed, err, rbErr)
			}
			return nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}

	amounts := make([]uint64, len(payouts))
	for i, p := range payouts {
		amounts[i] = p.Amount
	}
	l.notifier.NotifyRentDistributed(RentDistributed{
		PropertyID: propertyID,
		Owners:     owners,
		Amounts:    amounts,
	})
	if final {
		l.notifier.NotifyPeriodTerminated(PeriodTerminated{
			PropertyID: propertyID,
			Tenant:     tenant,
			When:       now,
			Refunded:   refund,
		})
	}
	return payouts, nil
}

// rollback restores the pre-commit accounting state after a failed
// settlement.
func (l *Ledger) rollback(rec *Record, escrow, retained uint64) error {
	if err := l.store.PutRecord(rec); err != nil {
		return err
	}
	if err := l.store.SetEscrow(rec.PropertyID, escrow); err != nil {
		return err
	}
	return l.store.SetRetained(rec.PropertyID, retained)
}
