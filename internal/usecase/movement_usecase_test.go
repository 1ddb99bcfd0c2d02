package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
	"github.com/vmorales/condoledger/internal/usecase/mocks"
)

type movementFixture struct {
	txManager     *mocks.MockTransactionManager
	movementRepo  *mocks.MockMovementRepository
	directoryRepo *mocks.MockDirectoryRepository
	configRepo    *mocks.MockConfigRepository
	allocator     *mocks.MockIDAllocator
	uc            *usecase.MovementUseCase
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &movementFixture{
		txManager:     mocks.NewMockTransactionManager(),
		movementRepo:  mocks.NewMockMovementRepository(),
		directoryRepo: mocks.NewMockDirectoryRepository(),
		configRepo:    mocks.NewMockConfigRepository(ctrl),
		allocator:     mocks.NewMockIDAllocator(ctrl),
	}
	f.uc = usecase.NewMovementUseCase(
		f.txManager, f.movementRepo, f.directoryRepo, f.configRepo, f.allocator, zerolog.Nop(),
	)
	return f
}

func TestMovementUseCase_RegisterPayment(t *testing.T) {
	f := newMovementFixture(t)
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("M0007", nil)

	m, err := f.uc.RegisterPayment(context.Background(), usecase.RegisterPaymentInput{
		UnitID:        101,
		Amount:        decimal.RequireFromString("75.50"),
		Concept:       "June payment",
		PaymentMethod: "transfer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.ID != "M0007" {
		t.Errorf("expected id M0007, got %q", m.ID)
	}
	if !m.Amount.Equal(decimal.RequireFromString("-75.50")) {
		t.Errorf("payments must be stored negative, got %s", m.Amount)
	}
	if m.Kind != domain.KindPayment {
		t.Errorf("expected kind PAYMENT, got %s", m.Kind)
	}
	if m.PaymentMethod != "TRANSFER" {
		t.Errorf("expected normalized method TRANSFER, got %q", m.PaymentMethod)
	}
	if f.txManager.LastTx == nil || !f.txManager.LastTx.Committed {
		t.Error("expected the transaction to be committed")
	}
	if len(f.movementRepo.Appended()) != 1 {
		t.Errorf("expected 1 appended movement, got %d", len(f.movementRepo.Appended()))
	}
}

func TestMovementUseCase_RegisterPayment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterPaymentInput
		wantErr error
	}{
		{
			name:    "treasury unit rejected",
			input:   usecase.RegisterPaymentInput{UnitID: 0, Amount: decimal.RequireFromString("10"), PaymentMethod: "CASH"},
			wantErr: domain.ErrInvalidUnit,
		},
		{
			name:    "negative unit rejected",
			input:   usecase.RegisterPaymentInput{UnitID: -3, Amount: decimal.RequireFromString("10"), PaymentMethod: "CASH"},
			wantErr: domain.ErrInvalidUnit,
		},
		{
			name:    "zero amount rejected",
			input:   usecase.RegisterPaymentInput{UnitID: 101, Amount: decimal.Zero, PaymentMethod: "CASH"},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount rejected",
			input:   usecase.RegisterPaymentInput{UnitID: 101, Amount: decimal.RequireFromString("-5"), PaymentMethod: "CASH"},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "unknown payment method rejected",
			input:   usecase.RegisterPaymentInput{UnitID: 101, Amount: decimal.RequireFromString("10"), PaymentMethod: "BARTER"},
			wantErr: domain.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMovementFixture(t)
			_, err := f.uc.RegisterPayment(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(f.movementRepo.Appended()) != 0 {
				t.Error("nothing should be written on validation failure")
			}
		})
	}
}

func TestMovementUseCase_RegisterFine(t *testing.T) {
	f := newMovementFixture(t)
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("M0010", nil)

	m, err := f.uc.RegisterFine(context.Background(), usecase.RegisterFineInput{
		UnitID:  102,
		Amount:  decimal.RequireFromString("25.00"),
		Concept: "Noise violation",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("fines must be stored positive, got %s", m.Amount)
	}
	if m.Kind != domain.KindFine {
		t.Errorf("expected kind FINE, got %s", m.Kind)
	}
	if m.DueDate != nil {
		t.Error("fines carry no due date")
	}
}

func TestMovementUseCase_RegisterDues(t *testing.T) {
	f := newMovementFixture(t)
	f.directoryRepo.Seed(
		domain.DirectoryEntry{UnitID: domain.TreasuryUnitID, Name: "Treasury"},
		domain.DirectoryEntry{UnitID: 101, Name: "Ana"},
		domain.DirectoryEntry{UnitID: 102, Name: "Luis"},
		domain.DirectoryEntry{UnitID: 103, Name: "Marta"},
	)

	f.configRepo.EXPECT().ReadAll(gomock.Any()).Return(map[string]string{
		"DUE_AMOUNT":       "65.00",
		"DUE_DAY_OF_MONTH": "10",
	}, nil)

	seq := 0
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx usecase.Transaction) (string, error) {
			seq++
			return fmt.Sprintf("M%04d", seq), nil
		},
	).Times(3)

	out, err := f.uc.RegisterDues(context.Background(), usecase.RegisterDuesInput{Period: "2025-07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.UnitsCharged != 3 {
		t.Errorf("expected 3 units charged (treasury excluded), got %d", out.UnitsCharged)
	}
	if !out.Amount.Equal(decimal.RequireFromString("65.00")) {
		t.Errorf("expected configured amount 65.00, got %s", out.Amount)
	}

	wantDue := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	if !out.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %s, got %s", wantDue, out.DueDate)
	}

	appended := f.movementRepo.Appended()
	if len(appended) != 3 {
		t.Fatalf("expected 3 dues written, got %d", len(appended))
	}
	for _, m := range appended {
		if m.Kind != domain.KindDue {
			t.Errorf("unit %d: expected kind DUE, got %s", m.UnitID, m.Kind)
		}
		if m.Concept != usecase.DefaultDueConcept {
			t.Errorf("unit %d: expected default concept, got %q", m.UnitID, m.Concept)
		}
		if m.DueDate == nil || !m.DueDate.Equal(wantDue) {
			t.Errorf("unit %d: wrong due date %v", m.UnitID, m.DueDate)
		}
		if m.UnitID == domain.TreasuryUnitID {
			t.Error("treasury must never be charged a due")
		}
	}
	if f.txManager.LastTx == nil || !f.txManager.LastTx.Committed {
		t.Error("expected a single committed transaction")
	}
}

func TestMovementUseCase_RegisterDues_ConfigFallbacks(t *testing.T) {
	f := newMovementFixture(t)
	f.directoryRepo.Seed(domain.DirectoryEntry{UnitID: 101, Name: "Ana"})

	f.configRepo.EXPECT().ReadAll(gomock.Any()).Return(map[string]string{
		"DUE_AMOUNT":       "not-a-number",
		"DUE_DAY_OF_MONTH": "99",
	}, nil)
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("M0001", nil)

	out, err := f.uc.RegisterDues(context.Background(), usecase.RegisterDuesInput{Period: "2025-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Amount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected fallback amount 50.00, got %s", out.Amount)
	}
	wantDue := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	if !out.DueDate.Equal(wantDue) {
		t.Errorf("expected fallback due date %s, got %s", wantDue, out.DueDate)
	}
}

func TestMovementUseCase_RegisterDues_DayClampedToMonthEnd(t *testing.T) {
	f := newMovementFixture(t)
	f.directoryRepo.Seed(domain.DirectoryEntry{UnitID: 101, Name: "Ana"})

	f.configRepo.EXPECT().ReadAll(gomock.Any()).Return(map[string]string{
		"DUE_AMOUNT":       "50.00",
		"DUE_DAY_OF_MONTH": "31",
	}, nil)
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("M0001", nil)

	out, err := f.uc.RegisterDues(context.Background(), usecase.RegisterDuesInput{Period: "2025-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDue := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	if !out.DueDate.Equal(wantDue) {
		t.Errorf("expected clamped due date %s, got %s", wantDue, out.DueDate)
	}
}

func TestMovementUseCase_RegisterDues_InvalidPeriod(t *testing.T) {
	f := newMovementFixture(t)

	for _, period := range []string{"", "2025", "07-2025", "2025-13", "2025/07"} {
		_, err := f.uc.RegisterDues(context.Background(), usecase.RegisterDuesInput{Period: period})
		if !errors.Is(err, domain.ErrInvalidPeriod) {
			t.Errorf("period %q: expected ErrInvalidPeriod, got %v", period, err)
		}
	}
}

func TestMovementUseCase_RegisterDues_AllocationFailureRollsBack(t *testing.T) {
	f := newMovementFixture(t)
	f.directoryRepo.Seed(
		domain.DirectoryEntry{UnitID: 101, Name: "Ana"},
		domain.DirectoryEntry{UnitID: 102, Name: "Luis"},
	)

	f.configRepo.EXPECT().ReadAll(gomock.Any()).Return(map[string]string{}, nil)
	f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("", domain.ErrStoreUnavailable)

	_, err := f.uc.RegisterDues(context.Background(), usecase.RegisterDuesInput{Period: "2025-07"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if f.txManager.LastTx == nil || f.txManager.LastTx.Committed {
		t.Error("the dues transaction must not commit on failure")
	}
	if !f.txManager.LastTx.RolledBack {
		t.Error("expected the transaction to be rolled back")
	}
}

func TestMovementUseCase_RegisterTreasury(t *testing.T) {
	tests := []struct {
		name       string
		flow       string
		wantKind   domain.MovementKind
		wantAmount string
	}{
		{"income stays positive", "INCOME", domain.KindTreasuryIncome, "300.00"},
		{"expense stored negative", "expense", domain.KindTreasuryExpense, "-300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMovementFixture(t)
			f.allocator.EXPECT().NextID(gomock.Any(), gomock.Any()).Return("M0042", nil)

			m, err := f.uc.RegisterTreasury(context.Background(), usecase.RegisterTreasuryInput{
				Amount:        decimal.RequireFromString("300.00"),
				Concept:       "Elevator maintenance",
				PaymentMethod: "CHECK",
				Flow:          tt.flow,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if m.UnitID != domain.TreasuryUnitID {
				t.Errorf("treasury movements belong to unit 0, got %d", m.UnitID)
			}
			if m.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, m.Kind)
			}
			if !m.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, m.Amount)
			}
		})
	}
}

func TestMovementUseCase_RegisterTreasury_InvalidFlow(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.RegisterTreasury(context.Background(), usecase.RegisterTreasuryInput{
		Amount:        decimal.RequireFromString("10.00"),
		PaymentMethod: "CASH",
		Flow:          "SIDEWAYS",
	})
	if !errors.Is(err, domain.ErrInvalidFlow) {
		t.Fatalf("expected ErrInvalidFlow, got %v", err)
	}
}
