package rental

import (
	"fmt"

	"github.com/rentrollorg/librentroll-go/settle"
	"github.com/rentrollorg/librentroll-go/shares"
)

// Terminate ends the active rental period early, refunding the whole
// remaining escrow plus any retained balance to the tenant and
// resetting the record to vacant. Terminating a vacant property is a
// precondition error, so a refund can never be paid twice.
func (l *Ledger) Terminate(caller shares.Address, propertyID shares.PropertyID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return err
	}

	rec, err := l.store.GetRecord(propertyID)
	if err != nil {
		return err
	}
	if !rec.Occupied {
		return ErrVacant
	}

	escrow, err := l.store.Escrow(propertyID)
	if err != nil {
		return err
	}
	retained, err := l.store.Retained(propertyID)
	if err != nil {
		return err
	}

	recBefore := *rec
	refund := escrow + retained
	tenant := rec.Tenant
	when := l.now().Unix()

	rec.resetVacant()
	if err := l.store.PutRecord(rec); err != nil {
		return err
	}
	if err := l.store.SetEscrow(propertyID, 0); err != nil {
		return err
	}
	if err := l.store.SetRetained(propertyID, 0); err != nil {
		return err
	}

	if refund > 0 {
		if err := l.payer.PayBatch([]settle.Payment{{To: tenant, Amount: refund}}); err != nil {
			if rbErr := l.rollback(&recBefore, escrow, retained); rbErr != nil {
				return fmt.Errorf("%w: %w (rollback failed: %w)", ErrTransferFailed, err, rbErr)
			}
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}

	l.notifier.NotifyPeriodTerminated(PeriodTerminated{
		PropertyID: propertyID,
		Tenant:     tenant,
		When:       when,
		Refunded:   refund,
	})
	return nil
}
