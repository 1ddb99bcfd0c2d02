package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vmorales/condoledger/internal/domain"
)

const boardCacheKey = "delinquency:board"

// BoardUseCase serves the administrative delinquency dashboard: every stored
// unit status joined with contact info, without recomputation.
type BoardUseCase struct {
	statusRepo    StatusRepository
	directoryRepo DirectoryRepository
	cache         Cache
	logger        zerolog.Logger
}

// NewBoardUseCase creates a new BoardUseCase. cache may be nil.
func NewBoardUseCase(
	statusRepo StatusRepository,
	directoryRepo DirectoryRepository,
	cache Cache,
	logger zerolog.Logger,
) *BoardUseCase {
	return &BoardUseCase{
		statusRepo:    statusRepo,
		directoryRepo: directoryRepo,
		cache:         cache,
		logger:        logger,
	}
}

// List returns the consolidated board. Reads go through a short-lived cache
// that consolidation runs invalidate; the treasury row is never reported.
func (uc *BoardUseCase) List(ctx context.Context) ([]UnitResult, error) {
	if cached, ok := uc.fromCache(ctx); ok {
		return cached, nil
	}

	statuses, err := uc.statusRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading statuses: %w", err)
	}

	directory, err := uc.directoryRepo.Map(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	results := make([]UnitResult, 0, len(statuses))
	for _, status := range statuses {
		if status.UnitID == domain.TreasuryUnitID {
			continue
		}

		contact, ok := directory[status.UnitID]
		if !ok {
			contact = domain.PlaceholderEntry(status.UnitID)
		}

		results = append(results, UnitResult{Status: status, Contact: contact})
	}

	uc.toCache(ctx, results)

	return results, nil
}

func (uc *BoardUseCase) fromCache(ctx context.Context) ([]UnitResult, bool) {
	if uc.cache == nil {
		return nil, false
	}

	raw, err := uc.cache.Get(ctx, boardCacheKey)
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	var results []UnitResult
	if err := json.Unmarshal(raw, &results); err != nil {
		uc.logger.Warn().Err(err).Msg("discarding unreadable board cache entry")
		return nil, false
	}

	return results, true
}

func (uc *BoardUseCase) toCache(ctx context.Context, results []UnitResult) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, boardCacheKey, raw, BoardCacheTTL); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to cache board")
	}
}
