package rental

import (
	"fmt"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Initiate opens a rental period. The inbound payment total carries
// the full period's rent plus any reserve top-ups combined; each
// contribution is forwarded to its fund and the rest becomes the
// distributable rent pool held in escrow.
//
// Reserve accounting subtracts each fund's full deficit from the
// remaining payment, as the settlement platform's rules prescribe,
// even when the contribution actually forwarded is smaller. The gap is
// not lost: it accrues to the property's retained balance and is
// refunded to the tenant at termination, so the totals always balance.
func (l *Ledger) Initiate(caller shares.Address, propertyID shares.PropertyID, tenant shares.Address, periodDays, total, maintenanceContribution, vacancyContribution uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return err
	}

	rec, err := l.store.GetRecord(propertyID)
	if err != nil {
		return err
	}
	if rec.Occupied {
		return ErrOccupied
	}
	if tenant.IsZero() {
		return fmt.Errorf("%w: tenant", ErrZeroAddress)
	}
	if total == 0 {
		return ErrZeroPayment
	}
	if periodDays == 0 {
		return ErrZeroPeriod
	}

	// Validation pass: read both deficits and size the split before
	// touching any state, so a rejection leaves nothing to unwind.
	remaining := total
	var retainedGap uint64
	contributions := []struct {
		fund   ReserveFund
		name   string
		amount uint64
	}{
		{l.maintenance, "maintenance", maintenanceContribution},
		{l.vacancy, "vacancy", vacancyContribution},
	}
	for i := range contributions {
		c := &contributions[i]
		if c.amount == 0 {
			continue
		}
		if c.amount > remaining {
			return fmt.Errorf("%w: %s contribution %d, remaining %d",
				ErrContributionExceedsPayment, c.name, c.amount, remaining)
		}
		_, _, deficit, err := c.fund.Check(propertyID)
		if err != nil {
			return err
		}
		if c.amount > deficit {
			return fmt.Errorf("%w: %s contribution %d, deficit %d",
				ErrContributionExceedsDeficit, c.name, c.amount, deficit)
		}
		if deficit > remaining {
			return fmt.Errorf("%w: %s deficit %d, remaining %d",
				ErrInsufficientPayment, c.name, deficit, remaining)
		}
		remaining -= deficit
		retainedGap += deficit - c.amount
	}

	dailyRent := remaining / periodDays
	if dailyRent == 0 {
		return fmt.Errorf("%w: remaining %d over %d days",
			ErrInsufficientPayment, remaining, periodDays)
	}

	// Cannot fail under truncating division; guards future changes to
	// the split arithmetic.
	if dailyRent*periodDays > remaining {
		return fmt.Errorf("%w: daily %d x %d days > remaining %d",
			ErrRentReconstruction, dailyRent, periodDays, remaining)
	}

	// Commit pass.
	for i := range contributions {
		c := &contributions[i]
		if c.amount == 0 {
			continue
		}
		if err := c.fund.Restore(propertyID, c.amount); err != nil {
			return fmt.Errorf("%s restore: %w", c.name, err)
		}
	}

	escrow, err := l.store.Escrow(propertyID)
	if err != nil {
		return err
	}
	if err := l.store.SetEscrow(propertyID, escrow+remaining); err != nil {
		return err
	}
	if retainedGap > 0 {
		retained, err := l.store.Retained(propertyID)
		if err != nil {
			return err
		}
		if err := l.store.SetRetained(propertyID, retained+retainedGap); err != nil {
			return err
		}
	}

	start := l.now().Unix()
	rec.Occupied = true
	rec.Tenant = tenant
	rec.RentalStart = start
	rec.PeriodDays = periodDays
	rec.DailyRent = dailyRent
	rec.CycleCount = 0
	if err := l.store.PutRecord(rec); err != nil {
		return err
	}

	l.notifier.NotifyPeriodInitiated(PeriodInitiated{
		PropertyID: propertyID,
		Tenant:     tenant,
		Start:      start,
		PeriodDays: periodDays,
	})
	return nil
}
