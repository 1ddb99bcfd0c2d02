package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidatePeriod(t *testing.T) {
	valid := []string{"2025-01", "1999-12"}
	for _, p := range valid {
		if err := ValidatePeriod(p); err != nil {
			t.Errorf("ValidatePeriod(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "2025", "2025-13", "2025-1", "01-2025", "abc"}
	for _, p := range invalid {
		if err := ValidatePeriod(p); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ValidatePeriod(%q) = %v, want ErrInvalidPeriod", p, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(0.01)); err != nil {
		t.Fatalf("positive amount rejected: %v", err)
	}
	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount accepted")
	}
	if err := ValidateAmount(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative amount accepted")
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	got, err := NormalizePaymentMethod(" cash ")
	if err != nil || got != "CASH" {
		t.Fatalf("NormalizePaymentMethod = %q, %v", got, err)
	}

	if _, err := NormalizePaymentMethod("BARTER"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("unknown method accepted")
	}
}

func TestNormalizeFlow(t *testing.T) {
	got, err := NormalizeFlow("income")
	if err != nil || got != FlowIncome {
		t.Fatalf("NormalizeFlow = %q, %v", got, err)
	}

	if _, err := NormalizeFlow("sideways"); !errors.Is(err, ErrInvalidFlow) {
		t.Fatalf("unknown flow accepted")
	}
}
