package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmorales/condoledger/internal/domain"
)

// DirectoryRepository serves the unit registry off the users table: active
// resident accounts define which units exist and who to contact for them.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository creates a new directory repository.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// GetByUnit retrieves the contact entry for one unit. Returns (nil, nil)
// when no active resident is registered for it.
func (r *DirectoryRepository) GetByUnit(ctx context.Context, unitID int) (*domain.DirectoryEntry, error) {
	query := `
		SELECT unit_id, name, email, phone
		FROM users
		WHERE unit_id = $1 AND role = $2 AND active
		ORDER BY created_at
		LIMIT 1
	`

	var entry domain.DirectoryEntry
	err := r.pool.QueryRow(ctx, query, unitID, string(domain.RoleResident)).Scan(
		&entry.UnitID,
		&entry.Name,
		&entry.Email,
		&entry.Phone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("querying directory entry", err)
	}

	return &entry, nil
}

// Map retrieves the whole directory keyed by unit. When a unit has several
// resident accounts the oldest one wins.
func (r *DirectoryRepository) Map(ctx context.Context) (map[int]domain.DirectoryEntry, error) {
	query := `
		SELECT DISTINCT ON (unit_id) unit_id, name, email, phone
		FROM users
		WHERE role = $1 AND active
		ORDER BY unit_id, created_at
	`

	rows, err := r.pool.Query(ctx, query, string(domain.RoleResident))
	if err != nil {
		return nil, storeError("querying directory", err)
	}
	defer rows.Close()

	entries := make(map[int]domain.DirectoryEntry)
	for rows.Next() {
		var entry domain.DirectoryEntry
		if err := rows.Scan(&entry.UnitID, &entry.Name, &entry.Email, &entry.Phone); err != nil {
			return nil, storeError("querying directory", err)
		}
		entries[entry.UnitID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("querying directory", err)
	}

	return entries, nil
}

// ListActiveUnits retrieves the ids of every unit with an active resident,
// ascending.
func (r *DirectoryRepository) ListActiveUnits(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT unit_id
		FROM users
		WHERE role = $1 AND active AND unit_id > 0
		ORDER BY unit_id
	`

	rows, err := r.pool.Query(ctx, query, string(domain.RoleResident))
	if err != nil {
		return nil, storeError("querying active units", err)
	}
	defer rows.Close()

	var units []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, storeError("querying active units", err)
		}
		units = append(units, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("querying active units", err)
	}

	return units, nil
}
