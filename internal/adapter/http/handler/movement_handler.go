package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vmorales/condoledger/internal/adapter/http/dto"
	"github.com/vmorales/condoledger/internal/infrastructure/metrics"
	"github.com/vmorales/condoledger/internal/usecase"
)

// MovementHandler handles ledger movement registration endpoints.
type MovementHandler struct {
	movementUseCase *usecase.MovementUseCase
	metrics         *metrics.Metrics
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementUseCase *usecase.MovementUseCase, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movementUseCase: movementUseCase, metrics: m}
}

// CreatePayment records a payment against a unit.
func (h *MovementHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	m, err := h.movementUseCase.RegisterPayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register payment", err.Error())
		return
	}

	h.metrics.MovementsRegistered.WithLabelValues(string(m.Kind)).Inc()
	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(*m))
}

// CreateFine records a fine against a unit.
func (h *MovementHandler) CreateFine(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterFineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	m, err := h.movementUseCase.RegisterFine(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register fine", err.Error())
		return
	}

	h.metrics.MovementsRegistered.WithLabelValues(string(m.Kind)).Inc()
	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(*m))
}

// CreateDues runs a mass monthly dues charge for a period.
func (h *MovementHandler) CreateDues(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.movementUseCase.RegisterDues(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register dues", err.Error())
		return
	}

	h.metrics.DuesRunsTotal.Inc()
	h.metrics.MovementsRegistered.WithLabelValues("DUE").Add(float64(out.UnitsCharged))

	writeJSON(w, http.StatusCreated, dto.DuesRunResponse{
		Period:       out.Period,
		UnitsCharged: out.UnitsCharged,
		Amount:       out.Amount,
		DueDate:      out.DueDate.Format("2006-01-02"),
	})
}

// CreateTreasury records a shared-treasury transaction.
func (h *MovementHandler) CreateTreasury(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterTreasuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	m, err := h.movementUseCase.RegisterTreasury(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register treasury transaction", err.Error())
		return
	}

	h.metrics.MovementsRegistered.WithLabelValues(string(m.Kind)).Inc()
	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(*m))
}
