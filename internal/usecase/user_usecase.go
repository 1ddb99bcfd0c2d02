package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vmorales/condoledger/internal/domain"
)

// UserUseCase handles account creation and credential verification.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
	}
}

// CreateUserInput represents input for creating a user account.
type CreateUserInput struct {
	NationalID string
	Name       string
	Email      string
	Phone      string
	UnitID     int
	Role       domain.Role
	Password   string
}

// CreateUser registers a new account. Resident accounts must belong to a
// real unit; operator accounts are attached to the treasury unit.
func (uc *UserUseCase) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	nationalID := strings.TrimSpace(in.NationalID)
	if nationalID == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !in.Role.IsValid() {
		return nil, domain.ErrInsufficientRole
	}
	if in.Role == domain.RoleResident && in.UnitID <= domain.TreasuryUnitID {
		return nil, domain.ErrInvalidUnit
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		NationalID:     nationalID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		UnitID:         in.UnitID,
		Role:           in.Role,
		HashedPassword: hashed,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a national id and password pair and returns the
// matching account. Unknown ids, inactive accounts and wrong passwords all
// collapse into ErrInvalidCredentials so callers cannot probe for accounts.
func (uc *UserUseCase) Authenticate(ctx context.Context, nationalID, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByNationalID(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
