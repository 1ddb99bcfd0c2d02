package domain

import "errors"

var (
	// Ledger store errors
	ErrStoreUnavailable = errors.New("ledger store unavailable")
	ErrRecordMalformed  = errors.New("record malformed")
	ErrUnitNotFound     = errors.New("unit not found")

	// Input validation errors
	ErrInvalidUnit          = errors.New("unit id must be a positive integer")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidPeriod        = errors.New("period must use the YYYY-MM format")
	ErrInvalidPaymentMethod = errors.New("payment method must be TRANSFER, CASH or CHECK")
	ErrInvalidFlow          = errors.New("financial flow must be INCOME or EXPENSE")
	ErrTreasuryUnit         = errors.New("operation not allowed for the treasury unit")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid national id or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInsufficientRole   = errors.New("insufficient role for this operation")
)
