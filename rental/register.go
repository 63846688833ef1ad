package rental

import (
	"errors"
	"fmt"

	"github.com/rentrollorg/librentroll-go/shares"
)

// Register lists a property for rental accounting. The property must
// already exist as a share token and must not be listed yet. Both
// reserve caps are pushed into their funds and recorded; the record is
// created vacant.
func (l *Ledger) Register(caller shares.Address, propertyID shares.PropertyID, maintenanceCap, vacancyCap uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return err
	}

	exists, err := l.shares.Exists(propertyID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownProperty
	}

	if _, err := l.store.GetRecord(propertyID); err == nil {
		return ErrAlreadyListed
	} else if !errors.Is(err, ErrNotListed) {
		return err
	}

	if maintenanceCap == 0 || vacancyCap == 0 {
		return ErrZeroCap
	}

	if err := l.maintenance.SetCap(propertyID, maintenanceCap); err != nil {
		return fmt.Errorf("maintenance cap: %w", err)
	}
	if err := l.vacancy.SetCap(propertyID, vacancyCap); err != nil {
		return fmt.Errorf("vacancy cap: %w", err)
	}

	rec := &Record{
		PropertyID:     propertyID,
		Listed:         true,
		MaintenanceCap: maintenanceCap,
		VacancyCap:     vacancyCap,
	}
	return l.store.PutRecord(rec)
}

// UpdateCaps reconfigures the reserve caps for a listed property. A
// zero value means "leave unchanged", not "set to zero": the sentinel
// convention lets one cap be updated without touching the other. The
// funds themselves reject a cap below their current balance.
func (l *Ledger) UpdateCaps(caller shares.Address, propertyID shares.PropertyID, newMaintenanceCap, newVacancyCap uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gate.Require(caller); err != nil {
		return err
	}

	rec, err := l.store.GetRecord(propertyID)
	if err != nil {
		return err
	}

	prevMaintenanceCap := rec.MaintenanceCap
	if newMaintenanceCap != 0 {
		if err := l.maintenance.SetCap(propertyID, newMaintenanceCap); err != nil {
			return fmt.Errorf("maintenance cap: %w", err)
		}
		rec.MaintenanceCap = newMaintenanceCap
	}
	if newVacancyCap != 0 {
		if err := l.vacancy.SetCap(propertyID, newVacancyCap); err != nil {
			// Undo the maintenance cap change so a half-applied
			// update never lands.
			if newMaintenanceCap != 0 {
				if undoErr := l.maintenance.SetCap(propertyID, prevMaintenanceCap); undoErr != nil {
					return fmt.Errorf("vacancy cap: %w (maintenance rollback failed: %w)", err, undoErr)
				}
			}
			return fmt.Errorf("vacancy cap: %w", err)
		}
		rec.VacancyCap = newVacancyCap
	}

	return l.store.PutRecord(rec)
}
