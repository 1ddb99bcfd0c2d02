package handler

import (
	"net/http"
	"time"

	"github.com/vmorales/condoledger/internal/adapter/http/dto"
	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/infrastructure/metrics"
	"github.com/vmorales/condoledger/internal/usecase"
)

// DelinquencyHandler serves consolidation runs and the delinquency board.
type DelinquencyHandler struct {
	consolidationUseCase *usecase.ConsolidationUseCase
	boardUseCase         *usecase.BoardUseCase
	metrics              *metrics.Metrics
}

// NewDelinquencyHandler creates a new DelinquencyHandler.
func NewDelinquencyHandler(
	consolidationUseCase *usecase.ConsolidationUseCase,
	boardUseCase *usecase.BoardUseCase,
	m *metrics.Metrics,
) *DelinquencyHandler {
	return &DelinquencyHandler{
		consolidationUseCase: consolidationUseCase,
		boardUseCase:         boardUseCase,
		metrics:              m,
	}
}

// Consolidate recomputes every unit's delinquency status as of now.
func (h *DelinquencyHandler) Consolidate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.consolidationUseCase.Run(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "consolidation failed", err.Error())
		return
	}

	h.metrics.ConsolidationRuns.Inc()
	h.metrics.ConsolidationDuration.Observe(time.Since(start).Seconds())
	h.publishSeverityCounts(out.Results)

	writeJSON(w, http.StatusOK, dto.ConsolidateResponse{
		UnitsTotal:     out.UnitsTotal,
		UnitsProcessed: out.UnitsProcessed,
		Results:        dto.UnitResultsFromDomain(out.Results),
	})
}

// Board returns the consolidated delinquency dashboard.
func (h *DelinquencyHandler) Board(w http.ResponseWriter, r *http.Request) {
	results, err := h.boardUseCase.List(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read delinquency board", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UnitResultsFromDomain(results))
}

func (h *DelinquencyHandler) publishSeverityCounts(results []usecase.UnitResult) {
	counts := map[domain.Severity]int{
		domain.SeverityGreen:  0,
		domain.SeverityYellow: 0,
		domain.SeverityRed:    0,
	}
	for _, r := range results {
		counts[r.Status.Severity]++
	}
	for sev, n := range counts {
		h.metrics.UnitsBySeverity.WithLabelValues(string(sev)).Set(float64(n))
	}
}
