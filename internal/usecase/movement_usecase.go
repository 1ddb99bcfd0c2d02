package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
)

// DefaultDueConcept labels mass-generated monthly dues when the caller
// supplies none.
const DefaultDueConcept = "Monthly maintenance due"

// MovementUseCase records new ledger movements. Every write allocates its id
// and appends inside one transaction, so the max-based sequence cannot be
// observed twice.
type MovementUseCase struct {
	txManager     TransactionManager
	movementRepo  MovementRepository
	directoryRepo DirectoryRepository
	configRepo    ConfigRepository
	allocator     IDAllocator
	logger        zerolog.Logger
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	movementRepo MovementRepository,
	directoryRepo DirectoryRepository,
	configRepo ConfigRepository,
	allocator IDAllocator,
	logger zerolog.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:     txManager,
		movementRepo:  movementRepo,
		directoryRepo: directoryRepo,
		configRepo:    configRepo,
		allocator:     allocator,
		logger:        logger,
	}
}

// RegisterPaymentInput represents input for recording a payment.
type RegisterPaymentInput struct {
	UnitID        int
	Amount        decimal.Decimal
	Concept       string
	PaymentMethod string
}

// RegisterPayment records a payment against a unit. Payments always enter
// the ledger negative: they reduce the unit's owed balance.
func (uc *MovementUseCase) RegisterPayment(ctx context.Context, in RegisterPaymentInput) (*domain.Movement, error) {
	if in.UnitID <= domain.TreasuryUnitID {
		return nil, domain.ErrInvalidUnit
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	method, err := domain.NormalizePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := domain.Movement{
		UnitID:        in.UnitID,
		Period:        now.Format("2006-01"),
		Kind:          domain.KindPayment,
		Concept:       in.Concept,
		Amount:        in.Amount.Neg(),
		PaymentMethod: method,
		RegisteredAt:  now,
	}

	return uc.append(ctx, m)
}

// RegisterFineInput represents input for recording a fine.
type RegisterFineInput struct {
	UnitID  int
	Amount  decimal.Decimal
	Concept string
}

// RegisterFine records a fine against a unit. Fines increase the owed
// balance and never carry a due date.
func (uc *MovementUseCase) RegisterFine(ctx context.Context, in RegisterFineInput) (*domain.Movement, error) {
	if in.UnitID <= domain.TreasuryUnitID {
		return nil, domain.ErrInvalidUnit
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := domain.Movement{
		UnitID:       in.UnitID,
		Period:       now.Format("2006-01"),
		Kind:         domain.KindFine,
		Concept:      in.Concept,
		Amount:       in.Amount,
		RegisteredAt: now,
	}

	return uc.append(ctx, m)
}

// RegisterDuesInput represents input for a mass monthly dues run.
type RegisterDuesInput struct {
	Period  string // YYYY-MM
	Concept string
}

// DuesRunOutput summarizes a mass dues run.
type DuesRunOutput struct {
	Period       string
	UnitsCharged int
	Amount       decimal.Decimal
	DueDate      time.Time
}

// RegisterDues charges the configured monthly due to every active
// non-treasury unit for the given period, in a single transaction. The due
// amount and the day of the month it expires come from the config store.
func (uc *MovementUseCase) RegisterDues(ctx context.Context, in RegisterDuesInput) (*DuesRunOutput, error) {
	if err := domain.ValidatePeriod(in.Period); err != nil {
		return nil, err
	}

	amount, dueDay, err := uc.dueConfig(ctx)
	if err != nil {
		return nil, err
	}

	periodStart, _ := time.Parse("2006-01", in.Period)
	dueDate := dueDateFor(periodStart, dueDay)

	concept := in.Concept
	if concept == "" {
		concept = DefaultDueConcept
	}

	units, err := uc.directoryRepo.ListActiveUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active units: %w", err)
	}

	out := &DuesRunOutput{Period: in.Period, Amount: amount, DueDate: dueDate}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	for _, unitID := range units {
		if unitID == domain.TreasuryUnitID {
			continue
		}

		id, err := uc.allocator.NextID(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("allocating movement id: %w", err)
		}

		d := dueDate
		m := domain.Movement{
			ID:           id,
			UnitID:       unitID,
			Period:       in.Period,
			Kind:         domain.KindDue,
			Concept:      concept,
			Amount:       amount,
			DueDate:      &d,
			RegisteredAt: now,
		}

		if err := uc.movementRepo.Append(ctx, tx, m); err != nil {
			return nil, fmt.Errorf("appending due for unit %d: %w", unitID, err)
		}
		out.UnitsCharged++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing dues run: %w", err)
	}

	return out, nil
}

// RegisterTreasuryInput represents input for a treasury transaction.
type RegisterTreasuryInput struct {
	Amount        decimal.Decimal
	Concept       string
	PaymentMethod string
	Flow          string // INCOME or EXPENSE
}

// RegisterTreasury records a shared-treasury transaction against unit 0.
// The stored sign follows the flow flag: expenses are negative.
func (uc *MovementUseCase) RegisterTreasury(ctx context.Context, in RegisterTreasuryInput) (*domain.Movement, error) {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	method, err := domain.NormalizePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	flow, err := domain.NormalizeFlow(in.Flow)
	if err != nil {
		return nil, err
	}

	amount := in.Amount
	kind := domain.KindTreasuryIncome
	if flow == domain.FlowExpense {
		amount = amount.Neg()
		kind = domain.KindTreasuryExpense
	}

	now := time.Now().UTC()
	m := domain.Movement{
		UnitID:        domain.TreasuryUnitID,
		Period:        now.Format("2006-01"),
		Kind:          kind,
		Concept:       in.Concept,
		Amount:        amount,
		PaymentMethod: method,
		RegisteredAt:  now,
		Flow:          flow,
	}

	return uc.append(ctx, m)
}

// append allocates an id for m and writes it in one transaction.
func (uc *MovementUseCase) append(ctx context.Context, m domain.Movement) (*domain.Movement, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	m.ID, err = uc.allocator.NextID(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("allocating movement id: %w", err)
	}

	if err := uc.movementRepo.Append(ctx, tx, m); err != nil {
		return nil, fmt.Errorf("appending movement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing movement: %w", err)
	}

	return &m, nil
}

// dueConfig reads DUE_AMOUNT and DUE_DAY_OF_MONTH, falling back to safe
// defaults when a key is absent or does not parse.
func (uc *MovementUseCase) dueConfig(ctx context.Context) (decimal.Decimal, int, error) {
	cfg, err := uc.configRepo.ReadAll(ctx)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("reading configuration: %w", err)
	}

	amount, err := decimal.NewFromString(cfg[ConfigKeyDueAmount])
	if err != nil || !amount.IsPositive() {
		uc.logger.Warn().Str("key", ConfigKeyDueAmount).Str("value", cfg[ConfigKeyDueAmount]).
			Msg("falling back to default due amount")
		amount = decimal.RequireFromString(DefaultDueAmount)
	}

	day, err := strconv.Atoi(cfg[ConfigKeyDueDayOfMonth])
	if err != nil || day < 1 || day > 31 {
		uc.logger.Warn().Str("key", ConfigKeyDueDayOfMonth).Str("value", cfg[ConfigKeyDueDayOfMonth]).
			Msg("falling back to default due day")
		day = DefaultDueDayOfMonth
	}

	return amount, day, nil
}

// dueDateFor places the due day inside the period's month, clamping to the
// last day when the month is shorter than the configured day.
func dueDateFor(periodStart time.Time, day int) time.Time {
	lastDay := periodStart.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(periodStart.Year(), periodStart.Month(), day, 0, 0, 0, 0, time.UTC)
}
