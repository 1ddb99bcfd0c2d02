package usecase

import (
	"context"
	"time"

	"github.com/vmorales/condoledger/internal/domain"
)

// MovementRepository defines data access for ledger movements. Movements are
// append-only; there is no update or delete path.
type MovementRepository interface {
	ListByUnit(ctx context.Context, unitID int) ([]domain.Movement, error)
	ListAll(ctx context.Context) ([]domain.Movement, error)
	Append(ctx context.Context, tx Transaction, m domain.Movement) error
}

// StatusRepository defines data access for consolidated unit statuses.
// Get returns (nil, nil) when a unit has never been consolidated.
type StatusRepository interface {
	GetByUnit(ctx context.Context, unitID int) (*domain.UnitStatus, error)
	Upsert(ctx context.Context, status domain.UnitStatus) error
	ListAll(ctx context.Context) ([]domain.UnitStatus, error)
}

// DirectoryRepository exposes the unit registry: contact data and the set of
// active units. GetByUnit returns (nil, nil) for unknown units.
type DirectoryRepository interface {
	GetByUnit(ctx context.Context, unitID int) (*domain.DirectoryEntry, error)
	Map(ctx context.Context) (map[int]domain.DirectoryEntry, error)
	ListActiveUnits(ctx context.Context) ([]int, error)
}

// ConfigRepository reads the key-value system configuration.
type ConfigRepository interface {
	ReadAll(ctx context.Context) (map[string]string, error)
}

// UserRepository defines data access for user accounts.
// GetByNationalID returns (nil, nil) when no account matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByNationalID(ctx context.Context, nationalID string) (*domain.User, error)
}

// IDAllocator produces the next sequential movement id. Allocation must run
// inside the same transaction as the append so concurrent writers cannot
// observe the same maximum.
type IDAllocator interface {
	NextID(ctx context.Context, tx Transaction) (string, error)
}

// IDGenerator generates unique ids for user accounts.
type IDGenerator interface {
	Generate() string
}

// Transaction represents a store transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
