package domain

import (
	"sort"
	"time"
)

// Severity is the three-level traffic-light delinquency indicator.
type Severity string

const (
	SeverityGreen  Severity = "GREEN"
	SeverityYellow Severity = "YELLOW"
	SeverityRed    Severity = "RED"
)

// Delinquency day thresholds. A unit escalates to YELLOW after 15 days past
// the oldest unpaid due date and to RED after 30.
const (
	YellowThresholdDays = 15
	RedThresholdDays    = 30
)

// Classification is the delinquency summary derived from a unit's movements.
type Classification struct {
	OverdueCount int
	DaysOverdue  int
	Severity     Severity
}

// Classify scans a unit's movement history and determines its delinquency
// state as of today.
//
// A zero or credit balance is never delinquent, regardless of individual
// overdue entries. A positive balance with no formally overdue due yet
// (e.g. driven by a fine with no due date) is YELLOW: the unit owes money
// even though nothing has expired. Otherwise severity follows the day
// thresholds applied to the oldest overdue due date.
func Classify(movements []Movement, today time.Time) Classification {
	if !Balance(movements).IsPositive() {
		return Classification{Severity: SeverityGreen}
	}

	overdue := overdueDues(movements, today)
	if len(overdue) == 0 {
		return Classification{Severity: SeverityYellow}
	}

	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].DueDate.Before(*overdue[j].DueDate)
	})

	days := daysBetween(*overdue[0].DueDate, today)

	return Classification{
		OverdueCount: len(overdue),
		DaysOverdue:  days,
		Severity:     severityForDays(days),
	}
}

// overdueDues selects the DUE-type charges whose due date has passed.
// Movements without a parseable due date never enter the overdue set.
func overdueDues(movements []Movement, today time.Time) []Movement {
	var out []Movement
	for _, m := range movements {
		if m.Kind != KindDue || !m.Amount.IsPositive() || m.DueDate == nil {
			continue
		}
		if !m.DueDate.After(truncateToDay(today)) {
			out = append(out, m)
		}
	}
	return out
}

func severityForDays(days int) Severity {
	switch {
	case days >= RedThresholdDays:
		return SeverityRed
	case days >= YellowThresholdDays:
		return SeverityYellow
	default:
		return SeverityGreen
	}
}

// daysBetween returns the whole calendar days from a to b, never negative.
func daysBetween(a, b time.Time) int {
	days := int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
