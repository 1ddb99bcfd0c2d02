package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreasuryUnitID is the reserved synthetic unit representing the shared
// treasury. It carries movements but never a delinquency status.
const TreasuryUnitID = 0

// MovementKind categorizes a ledger movement. The set is open-ended:
// reporting code must tolerate kinds it does not recognize.
type MovementKind string

const (
	KindDue             MovementKind = "DUE"
	KindFine            MovementKind = "FINE"
	KindPayment         MovementKind = "PAYMENT"
	KindTreasuryIncome  MovementKind = "TREASURY_INCOME"
	KindTreasuryExpense MovementKind = "TREASURY_EXPENSE"
)

// FinancialFlow marks the direction of a treasury transaction.
type FinancialFlow string

const (
	FlowIncome  FinancialFlow = "INCOME"
	FlowExpense FinancialFlow = "EXPENSE"
)

// Movement is one immutable ledger line item. Charges (dues, fines) carry
// positive amounts, payments and credits negative ones; the running balance
// of a unit is simply the sum of its movement amounts.
type Movement struct {
	ID            string
	UnitID        int
	Period        string // YYYY-MM label of the charge
	Kind          MovementKind
	Concept       string
	Amount        decimal.Decimal
	DueDate       *time.Time // present only on charge-type movements
	PaymentMethod string
	RegisteredAt  time.Time
	Flow          FinancialFlow // treasury rows only
}

// IsCharge reports whether the movement increases the unit's owed balance.
func (m Movement) IsCharge() bool {
	return m.Amount.IsPositive()
}
