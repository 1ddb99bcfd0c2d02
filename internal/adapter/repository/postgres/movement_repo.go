package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
)

// Stored date layouts. The movements table keeps the legacy ledger texture:
// amounts and dates travel as text and this repository is the only place
// they are parsed.
const (
	dueDateLayout      = "2006-01-02"
	registeredAtLayout = time.RFC3339
)

// MovementRepository implements movement persistence over the raw ledger
// table. Rows whose amount does not parse are skipped and logged instead of
// failing the whole read; rows with an unparseable due date are kept with no
// due date so they still count toward the balance.
type MovementRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	logger  zerolog.Logger
}

// NewMovementRepository creates a new movement repository.
func NewMovementRepository(pool *pgxpool.Pool, retrier *Retrier, logger zerolog.Logger) *MovementRepository {
	return &MovementRepository{pool: pool, retrier: retrier, logger: logger}
}

const movementColumns = `id, unit_id, period, kind, concept, amount, due_date, payment_method, registered_at, flow`

// ListByUnit retrieves all movements for one unit, oldest id first.
func (r *MovementRepository) ListByUnit(ctx context.Context, unitID int) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE unit_id = $1
		ORDER BY id
	`
	return r.list(ctx, query, unitID)
}

// ListAll retrieves every movement in the ledger, oldest id first.
func (r *MovementRepository) ListAll(ctx context.Context) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		ORDER BY id
	`
	return r.list(ctx, query)
}

func (r *MovementRepository) list(ctx context.Context, query string, args ...any) ([]domain.Movement, error) {
	var movements []domain.Movement

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		movements = movements[:0]
		for rows.Next() {
			var raw rawMovement
			if err := rows.Scan(
				&raw.id,
				&raw.unitID,
				&raw.period,
				&raw.kind,
				&raw.concept,
				&raw.amount,
				&raw.dueDate,
				&raw.paymentMethod,
				&raw.registeredAt,
				&raw.flow,
			); err != nil {
				return err
			}

			m, err := r.parse(raw)
			if err != nil {
				r.logger.Warn().Err(err).Str("movement_id", raw.id).Msg("skipping malformed ledger row")
				continue
			}
			movements = append(movements, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, storeError("querying movements", err)
	}

	return movements, nil
}

// Append inserts a movement inside the given transaction.
func (r *MovementRepository) Append(ctx context.Context, tx usecase.Transaction, m domain.Movement) error {
	pgxTx, err := pgxTxFrom(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var dueDate string
	if m.DueDate != nil {
		dueDate = m.DueDate.Format(dueDateLayout)
	}

	_, err = pgxTx.Exec(ctx, query,
		m.ID,
		m.UnitID,
		m.Period,
		string(m.Kind),
		m.Concept,
		m.Amount.String(),
		dueDate,
		m.PaymentMethod,
		m.RegisteredAt.Format(registeredAtLayout),
		string(m.Flow),
	)
	if err != nil {
		return storeError("inserting movement", err)
	}

	return nil
}

type rawMovement struct {
	id            string
	unitID        int
	period        string
	kind          string
	concept       string
	amount        string
	dueDate       string
	paymentMethod string
	registeredAt  string
	flow          string
}

// parse converts a raw ledger row to a typed movement. An unparseable amount
// makes the whole row malformed; an unparseable due date only clears the due
// date.
func (r *MovementRepository) parse(raw rawMovement) (domain.Movement, error) {
	amount, err := decimal.NewFromString(raw.amount)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("%w: amount %q: %v", domain.ErrRecordMalformed, raw.amount, err)
	}

	m := domain.Movement{
		ID:            raw.id,
		UnitID:        raw.unitID,
		Period:        raw.period,
		Kind:          domain.MovementKind(raw.kind),
		Concept:       raw.concept,
		Amount:        amount,
		PaymentMethod: raw.paymentMethod,
		Flow:          domain.FinancialFlow(raw.flow),
	}

	if raw.dueDate != "" {
		if d, err := time.Parse(dueDateLayout, raw.dueDate); err == nil {
			m.DueDate = &d
		} else {
			r.logger.Warn().Str("movement_id", raw.id).Str("due_date", raw.dueDate).
				Msg("ignoring unparseable due date")
		}
	}

	if raw.registeredAt != "" {
		if ts, err := time.Parse(registeredAtLayout, raw.registeredAt); err == nil {
			m.RegisteredAt = ts
		}
	}

	return m, nil
}

// storeError tags a low-level database failure with the store taxonomy so
// callers can map it without knowing pgx.
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}

// pgxTxFrom unwraps the adapter transaction handed back by TxManager.
func pgxTxFrom(tx usecase.Transaction) (pgx.Tx, error) {
	t, ok := tx.(*Tx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	return t.PgxTx(), nil
}
