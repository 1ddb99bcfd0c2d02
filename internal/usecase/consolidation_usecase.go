package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vmorales/condoledger/internal/domain"
)

// UnitResult is a consolidated status joined with the unit's contact info,
// as returned to the caller of a consolidation run or the delinquency board.
type UnitResult struct {
	Status  domain.UnitStatus
	Contact domain.DirectoryEntry
}

// ConsolidateOutput summarizes one consolidation run. UnitsProcessed may be
// lower than UnitsTotal when individual units were skipped.
type ConsolidateOutput struct {
	Results        []UnitResult
	UnitsTotal     int
	UnitsProcessed int
}

// ConsolidationUseCase recomputes every active unit's delinquency status
// from the full movement history and persists it.
type ConsolidationUseCase struct {
	movementRepo  MovementRepository
	statusRepo    StatusRepository
	directoryRepo DirectoryRepository
	cache         Cache
	logger        zerolog.Logger
}

// NewConsolidationUseCase creates a new ConsolidationUseCase. cache may be
// nil when no board cache is configured.
func NewConsolidationUseCase(
	movementRepo MovementRepository,
	statusRepo StatusRepository,
	directoryRepo DirectoryRepository,
	cache Cache,
	logger zerolog.Logger,
) *ConsolidationUseCase {
	return &ConsolidationUseCase{
		movementRepo:  movementRepo,
		statusRepo:    statusRepo,
		directoryRepo: directoryRepo,
		cache:         cache,
		logger:        logger,
	}
}

// Run consolidates all active units as of today.
//
// The store is read exactly three times (active units, movements, directory)
// regardless of unit count. Units are independent: a failure writing one
// unit's status is logged and skipped while the run continues; a failure on
// any of the three bulk reads aborts the whole run with no partial state
// reported.
func (uc *ConsolidationUseCase) Run(ctx context.Context, today time.Time) (*ConsolidateOutput, error) {
	units, err := uc.directoryRepo.ListActiveUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active units: %w", err)
	}

	movements, err := uc.movementRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading movements: %w", err)
	}

	directory, err := uc.directoryRepo.Map(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	byUnit := make(map[int][]domain.Movement, len(units))
	for _, m := range movements {
		byUnit[m.UnitID] = append(byUnit[m.UnitID], m)
	}

	now := time.Now().UTC()
	out := &ConsolidateOutput{}

	for _, unitID := range units {
		if unitID == domain.TreasuryUnitID {
			continue
		}
		out.UnitsTotal++

		status := domain.NewUnitStatus(unitID, byUnit[unitID], today, now)

		if err := uc.statusRepo.Upsert(ctx, status); err != nil {
			uc.logger.Warn().Err(err).Int("unit_id", unitID).Msg("skipping unit: status write failed")
			continue
		}

		contact, ok := directory[unitID]
		if !ok {
			contact = domain.PlaceholderEntry(unitID)
		}

		out.Results = append(out.Results, UnitResult{Status: status, Contact: contact})
		out.UnitsProcessed++
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, boardCacheKey); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to invalidate board cache")
		}
	}

	return out, nil
}
