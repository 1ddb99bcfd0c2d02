package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
)

// LoginRequest represents a login request.
type LoginRequest struct {
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

// CreateUserRequest represents a request to register an account.
type CreateUserRequest struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	UnitID     int    `json:"unit_id"`
	Role       string `json:"role"`
	Password   string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		NationalID: r.NationalID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		UnitID:     r.UnitID,
		Role:       domain.Role(r.Role),
		Password:   r.Password,
	}
}

// RegisterPaymentRequest represents a request to record a payment.
type RegisterPaymentRequest struct {
	UnitID        int             `json:"unit_id"`
	Amount        decimal.Decimal `json:"amount"`
	Concept       string          `json:"concept"`
	PaymentMethod string          `json:"payment_method"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterPaymentRequest) ToUseCaseInput() usecase.RegisterPaymentInput {
	return usecase.RegisterPaymentInput{
		UnitID:        r.UnitID,
		Amount:        r.Amount,
		Concept:       r.Concept,
		PaymentMethod: r.PaymentMethod,
	}
}

// RegisterFineRequest represents a request to record a fine.
type RegisterFineRequest struct {
	UnitID  int             `json:"unit_id"`
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterFineRequest) ToUseCaseInput() usecase.RegisterFineInput {
	return usecase.RegisterFineInput{
		UnitID:  r.UnitID,
		Amount:  r.Amount,
		Concept: r.Concept,
	}
}

// RegisterDuesRequest represents a request to run a mass monthly dues charge.
type RegisterDuesRequest struct {
	Period  string `json:"period"`
	Concept string `json:"concept,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterDuesRequest) ToUseCaseInput() usecase.RegisterDuesInput {
	return usecase.RegisterDuesInput{
		Period:  r.Period,
		Concept: r.Concept,
	}
}

// RegisterTreasuryRequest represents a request to record a treasury
// transaction.
type RegisterTreasuryRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Concept       string          `json:"concept"`
	PaymentMethod string          `json:"payment_method"`
	Flow          string          `json:"flow"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterTreasuryRequest) ToUseCaseInput() usecase.RegisterTreasuryInput {
	return usecase.RegisterTreasuryInput{
		Amount:        r.Amount,
		Concept:       r.Concept,
		PaymentMethod: r.PaymentMethod,
		Flow:          r.Flow,
	}
}
