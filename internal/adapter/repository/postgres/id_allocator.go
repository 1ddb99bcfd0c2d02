package postgres

import (
	"context"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
)

// movementIDLockKey is the advisory lock serializing movement id allocation.
const movementIDLockKey = 6023

// MovementIDAllocator issues the next sequential M-prefixed movement id.
// Allocation takes a transaction-scoped advisory lock before scanning the
// existing ids, so two concurrent writers can never read the same maximum.
type MovementIDAllocator struct{}

// NewMovementIDAllocator creates a new MovementIDAllocator.
func NewMovementIDAllocator() *MovementIDAllocator {
	return &MovementIDAllocator{}
}

// NextID returns the next free movement id. Must run inside the same
// transaction as the append that will use the id.
func (a *MovementIDAllocator) NextID(ctx context.Context, tx usecase.Transaction) (string, error) {
	pgxTx, err := pgxTxFrom(tx)
	if err != nil {
		return "", err
	}

	if _, err := pgxTx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, movementIDLockKey); err != nil {
		return "", storeError("locking id sequence", err)
	}

	rows, err := pgxTx.Query(ctx, `SELECT id FROM movements`)
	if err != nil {
		return "", storeError("scanning movement ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", storeError("scanning movement ids", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", storeError("scanning movement ids", err)
	}

	return domain.NextMovementID(ids), nil
}
