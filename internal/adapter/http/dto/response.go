package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
)

// MovementResponse represents a ledger movement in API responses.
type MovementResponse struct {
	ID            string          `json:"id"`
	UnitID        int             `json:"unit_id"`
	Period        string          `json:"period"`
	Kind          string          `json:"kind"`
	Concept       string          `json:"concept,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       *string         `json:"due_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	RegisteredAt  time.Time       `json:"registered_at"`
	Flow          string          `json:"flow,omitempty"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m domain.Movement) MovementResponse {
	resp := MovementResponse{
		ID:            m.ID,
		UnitID:        m.UnitID,
		Period:        m.Period,
		Kind:          string(m.Kind),
		Concept:       m.Concept,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		RegisteredAt:  m.RegisteredAt,
		Flow:          string(m.Flow),
	}
	if m.DueDate != nil {
		d := m.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	return resp
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []domain.Movement) []MovementResponse {
	result := make([]MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// UnitStatusResponse represents a consolidated unit status.
type UnitStatusResponse struct {
	UnitID       int             `json:"unit_id"`
	Balance      decimal.Decimal `json:"balance"`
	OverdueCount int             `json:"overdue_count"`
	DaysOverdue  int             `json:"days_overdue"`
	Severity     string          `json:"severity"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StatusFromDomain converts a domain unit status to a response.
func StatusFromDomain(s domain.UnitStatus) UnitStatusResponse {
	return UnitStatusResponse{
		UnitID:       s.UnitID,
		Balance:      s.Balance,
		OverdueCount: s.OverdueCount,
		DaysOverdue:  s.DaysOverdue,
		Severity:     string(s.Severity),
		UpdatedAt:    s.UpdatedAt,
	}
}

// ContactResponse represents a unit's contact entry.
type ContactResponse struct {
	UnitID int    `json:"unit_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// ContactFromDomain converts a directory entry to a response.
func ContactFromDomain(e domain.DirectoryEntry) ContactResponse {
	return ContactResponse{
		UnitID: e.UnitID,
		Name:   e.Name,
		Email:  e.Email,
		Phone:  e.Phone,
	}
}

// StatementResponse represents a unit's full account statement.
type StatementResponse struct {
	Contact          ContactResponse     `json:"contact"`
	Status           *UnitStatusResponse `json:"status,omitempty"`
	Movements        []MovementResponse  `json:"movements"`
	ComputedBalance  decimal.Decimal     `json:"computed_balance"`
}

// StatementFromDomain converts a usecase statement to a response. The status
// block is omitted for the treasury, which has no delinquency concept.
func StatementFromDomain(st *usecase.Statement) StatementResponse {
	resp := StatementResponse{
		Contact:         ContactFromDomain(st.Contact),
		Movements:       MovementsFromDomain(st.Movements),
		ComputedBalance: st.ComputedBalance,
	}
	if st.StatusApplicable {
		s := StatusFromDomain(st.Status)
		resp.Status = &s
	}
	return resp
}

// UnitResultResponse is one row of a consolidation result or the board.
type UnitResultResponse struct {
	Status  UnitStatusResponse `json:"status"`
	Contact ContactResponse    `json:"contact"`
}

// UnitResultsFromDomain converts usecase unit results to responses.
func UnitResultsFromDomain(results []usecase.UnitResult) []UnitResultResponse {
	out := make([]UnitResultResponse, len(results))
	for i, r := range results {
		out[i] = UnitResultResponse{
			Status:  StatusFromDomain(r.Status),
			Contact: ContactFromDomain(r.Contact),
		}
	}
	return out
}

// ConsolidateResponse summarizes a consolidation run.
type ConsolidateResponse struct {
	UnitsTotal     int                  `json:"units_total"`
	UnitsProcessed int                  `json:"units_processed"`
	Results        []UnitResultResponse `json:"results"`
}

// DuesRunResponse summarizes a mass dues run.
type DuesRunResponse struct {
	Period       string          `json:"period"`
	UnitsCharged int             `json:"units_charged"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
