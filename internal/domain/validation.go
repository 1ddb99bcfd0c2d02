package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Accepted payment methods for payment and treasury registrations.
var validPaymentMethods = map[string]bool{
	"TRANSFER": true,
	"CASH":     true,
	"CHECK":    true,
}

// ValidatePeriod checks a YYYY-MM charge period label.
func ValidatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return nil
}

// ValidateAmount rejects zero and negative caller-supplied amounts. The sign
// stored in the ledger is decided by the movement kind, never by the caller.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// NormalizePaymentMethod upper-cases and validates a payment method.
func NormalizePaymentMethod(method string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(method))
	if !validPaymentMethods[m] {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	return m, nil
}

// NormalizeFlow upper-cases and validates a treasury flow flag.
func NormalizeFlow(flow string) (FinancialFlow, error) {
	f := FinancialFlow(strings.ToUpper(strings.TrimSpace(flow)))
	if f != FlowIncome && f != FlowExpense {
		return "", fmt.Errorf("%w: %q", ErrInvalidFlow, flow)
	}
	return f, nil
}
