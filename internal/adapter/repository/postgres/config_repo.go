package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConfigRepository reads the key-value system configuration table.
type ConfigRepository struct {
	pool *pgxpool.Pool
}

// NewConfigRepository creates a new config repository.
func NewConfigRepository(pool *pgxpool.Pool) *ConfigRepository {
	return &ConfigRepository{pool: pool}
}

// ReadAll retrieves every configuration pair. Interpretation and fallbacks
// are the caller's concern.
func (r *ConfigRepository) ReadAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM config`)
	if err != nil {
		return nil, storeError("querying config", err)
	}
	defer rows.Close()

	cfg := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storeError("querying config", err)
		}
		cfg[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("querying config", err)
	}

	return cfg, nil
}
