package domain

import "github.com/shopspring/decimal"

// Balance folds a unit's movements into its signed running total. The sum is
// kept at full precision; callers round to 2 decimal places only at the
// reporting boundary.
func Balance(movements []Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

// RoundedBalance is Balance rounded for display and persistence.
func RoundedBalance(movements []Movement) decimal.Decimal {
	return Balance(movements).Round(2)
}
