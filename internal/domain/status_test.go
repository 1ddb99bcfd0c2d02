package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewUnitStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	d := now.AddDate(0, 0, -40)
	movements := []Movement{
		{Kind: KindDue, Amount: decimal.NewFromInt(50), DueDate: &d},
	}

	status := NewUnitStatus(4, movements, now, now)

	if status.UnitID != 4 {
		t.Fatalf("UnitID = %d", status.UnitID)
	}
	if status.Balance.String() != "50" {
		t.Fatalf("Balance = %s, want 50", status.Balance)
	}
	if status.Severity != SeverityRed || status.DaysOverdue != 40 || status.OverdueCount != 1 {
		t.Fatalf("unexpected classification: %+v", status)
	}
	if !status.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt = %v", status.UpdatedAt)
	}
}

func TestDefaultUnitStatus(t *testing.T) {
	now := time.Now().UTC()
	status := DefaultUnitStatus(9, now)

	if status.Severity != SeverityGreen || status.OverdueCount != 0 || status.DaysOverdue != 0 {
		t.Fatalf("default status not green/zero: %+v", status)
	}
	if !status.Balance.IsZero() {
		t.Fatalf("default balance = %s", status.Balance)
	}
}
