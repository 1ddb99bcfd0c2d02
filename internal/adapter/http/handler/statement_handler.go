package handler

import (
	"net/http"

	"github.com/vmorales/condoledger/internal/adapter/http/dto"
	"github.com/vmorales/condoledger/internal/adapter/http/middleware"
	"github.com/vmorales/condoledger/internal/usecase"
)

// StatementHandler serves unit account statements.
type StatementHandler struct {
	statementUseCase *usecase.StatementUseCase
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUseCase *usecase.StatementUseCase) *StatementHandler {
	return &StatementHandler{statementUseCase: statementUseCase}
}

// GetOwn returns the statement of the authenticated resident's unit.
func (h *StatementHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	statement, err := h.statementUseCase.Get(r.Context(), user.UnitID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assemble statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}

// GetByUnit returns the statement of an arbitrary unit.
func (h *StatementHandler) GetByUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := parseUnitID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid unit id", err.Error())
		return
	}

	statement, err := h.statementUseCase.Get(r.Context(), unitID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assemble statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
