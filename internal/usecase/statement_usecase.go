package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
)

// Statement is the full account view for one unit: contact info, the stored
// consolidated status, the movement history and a freshly computed balance.
// ComputedBalance is recalculated from the movements on every read so that a
// stale stored status is visible side by side with current reality.
type Statement struct {
	Contact          domain.DirectoryEntry
	Status           domain.UnitStatus
	StatusApplicable bool
	Movements        []domain.Movement
	ComputedBalance  decimal.Decimal
}

// StatementUseCase assembles account statements from the ledger store.
type StatementUseCase struct {
	movementRepo  MovementRepository
	statusRepo    StatusRepository
	directoryRepo DirectoryRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(
	movementRepo MovementRepository,
	statusRepo StatusRepository,
	directoryRepo DirectoryRepository,
) *StatementUseCase {
	return &StatementUseCase{
		movementRepo:  movementRepo,
		statusRepo:    statusRepo,
		directoryRepo: directoryRepo,
	}
}

// Get assembles the statement for unitID.
//
// A unit missing from the directory is ErrUnitNotFound, except the treasury,
// which always resolves. A unit that was never consolidated gets a default
// green status instead of an error. The treasury has no delinquency concept:
// its status is reported as not applicable with the movement sum as balance.
func (uc *StatementUseCase) Get(ctx context.Context, unitID int) (*Statement, error) {
	entry, err := uc.directoryRepo.GetByUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	if entry == nil {
		if unitID != domain.TreasuryUnitID {
			return nil, domain.ErrUnitNotFound
		}
		placeholder := domain.PlaceholderEntry(domain.TreasuryUnitID)
		entry = &placeholder
	}

	movements, err := uc.movementRepo.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("reading movements: %w", err)
	}

	computed := domain.RoundedBalance(movements)

	if unitID == domain.TreasuryUnitID {
		return &Statement{
			Contact: *entry,
			Status: domain.UnitStatus{
				UnitID:  domain.TreasuryUnitID,
				Balance: computed,
			},
			StatusApplicable: false,
			Movements:        movements,
			ComputedBalance:  computed,
		}, nil
	}

	status, err := uc.statusRepo.GetByUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	if status == nil {
		s := domain.DefaultUnitStatus(unitID, time.Now().UTC())
		status = &s
	}

	return &Statement{
		Contact:          *entry,
		Status:           *status,
		StatusApplicable: true,
		Movements:        movements,
		ComputedBalance:  computed,
	}, nil
}
