package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitStatus is the consolidated delinquency record for one unit. At most
// one live version exists per unit; consolidation overwrites it on every run.
type UnitStatus struct {
	UnitID       int
	Balance      decimal.Decimal
	OverdueCount int
	DaysOverdue  int
	Severity     Severity
	UpdatedAt    time.Time
}

// NewUnitStatus consolidates a unit's movements into its status record as of
// today, stamped with the given update time.
func NewUnitStatus(unitID int, movements []Movement, today, updatedAt time.Time) UnitStatus {
	c := Classify(movements, today)

	return UnitStatus{
		UnitID:       unitID,
		Balance:      RoundedBalance(movements),
		OverdueCount: c.OverdueCount,
		DaysOverdue:  c.DaysOverdue,
		Severity:     c.Severity,
		UpdatedAt:    updatedAt,
	}
}

// DefaultUnitStatus is the status reported for a unit that has never been
// consolidated: no debt, nothing overdue.
func DefaultUnitStatus(unitID int, updatedAt time.Time) UnitStatus {
	return UnitStatus{
		UnitID:    unitID,
		Balance:   decimal.Zero.Round(2),
		Severity:  SeverityGreen,
		UpdatedAt: updatedAt,
	}
}
