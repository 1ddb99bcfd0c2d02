package usecase

import "time"

const (
	// Configuration keys read from the config store.
	ConfigKeyDueAmount     = "DUE_AMOUNT"
	ConfigKeyDueDayOfMonth = "DUE_DAY_OF_MONTH"

	// Fallbacks applied when a configuration key is absent or malformed.
	DefaultDueAmount     = "50.00"
	DefaultDueDayOfMonth = 5

	// BoardCacheTTL bounds staleness of the cached delinquency board.
	BoardCacheTTL = time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
