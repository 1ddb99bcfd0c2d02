package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
)

// StatusRepository implements consolidated status persistence. One row per
// unit; consolidation overwrites it.
type StatusRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatusRepository creates a new status repository.
func NewStatusRepository(pool *pgxpool.Pool, logger zerolog.Logger) *StatusRepository {
	return &StatusRepository{pool: pool, logger: logger}
}

// GetByUnit retrieves a unit's consolidated status. Returns (nil, nil) when
// the unit has never been consolidated.
func (r *StatusRepository) GetByUnit(ctx context.Context, unitID int) (*domain.UnitStatus, error) {
	query := `
		SELECT unit_id, balance, overdue_count, days_overdue, severity, updated_at
		FROM unit_status
		WHERE unit_id = $1
	`

	status, err := scanStatus(r.pool.QueryRow(ctx, query, unitID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("querying unit status", err)
	}

	return status, nil
}

// Upsert writes a unit's status, replacing any previous version.
func (r *StatusRepository) Upsert(ctx context.Context, status domain.UnitStatus) error {
	query := `
		INSERT INTO unit_status (unit_id, balance, overdue_count, days_overdue, severity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (unit_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			overdue_count = EXCLUDED.overdue_count,
			days_overdue = EXCLUDED.days_overdue,
			severity = EXCLUDED.severity,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		status.UnitID,
		status.Balance.String(),
		status.OverdueCount,
		status.DaysOverdue,
		string(status.Severity),
		status.UpdatedAt,
	)
	if err != nil {
		return storeError("upserting unit status", err)
	}

	return nil
}

// ListAll retrieves every consolidated status ordered by unit.
func (r *StatusRepository) ListAll(ctx context.Context) ([]domain.UnitStatus, error) {
	query := `
		SELECT unit_id, balance, overdue_count, days_overdue, severity, updated_at
		FROM unit_status
		ORDER BY unit_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeError("querying unit statuses", err)
	}
	defer rows.Close()

	var statuses []domain.UnitStatus
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			r.logger.Warn().Err(err).Msg("skipping malformed status row")
			continue
		}
		statuses = append(statuses, *status)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("querying unit statuses", err)
	}

	return statuses, nil
}

func scanStatus(row pgx.Row) (*domain.UnitStatus, error) {
	var (
		status  domain.UnitStatus
		balance string
		sev     string
		updated time.Time
	)
	if err := row.Scan(&status.UnitID, &balance, &status.OverdueCount, &status.DaysOverdue, &sev, &updated); err != nil {
		return nil, err
	}

	b, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("%w: balance %q: %v", domain.ErrRecordMalformed, balance, err)
	}

	status.Balance = b
	status.Severity = domain.Severity(sev)
	status.UpdatedAt = updated

	return &status, nil
}
