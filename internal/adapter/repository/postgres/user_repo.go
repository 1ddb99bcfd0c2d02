package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmorales/condoledger/internal/domain"
)

// UserRepository implements user account persistence.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, national_id, name, email, phone, unit_id, role, hashed_password, active, created_at, updated_at`

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.NationalID,
		user.Name,
		user.Email,
		user.Phone,
		user.UnitID,
		string(user.Role),
		user.HashedPassword,
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return storeError("inserting user", err)
	}

	return nil
}

// GetByNationalID retrieves a user by national id. Returns (nil, nil) when
// no account matches.
func (r *UserRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE national_id = $1
	`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, nationalID).Scan(
		&user.ID,
		&user.NationalID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.UnitID,
		&user.Role,
		&user.HashedPassword,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("querying user", err)
	}

	return &user, nil
}
