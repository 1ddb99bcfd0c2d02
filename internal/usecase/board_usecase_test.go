package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
	"github.com/vmorales/condoledger/internal/usecase/mocks"
)

func seedBoardStatuses(t *testing.T, repo *mocks.MockStatusRepository) {
	t.Helper()
	statuses := []domain.UnitStatus{
		{UnitID: domain.TreasuryUnitID, Balance: decimal.RequireFromString("1000.00"), Severity: domain.SeverityGreen},
		{UnitID: 101, Balance: decimal.RequireFromString("150.00"), DaysOverdue: 45, OverdueCount: 3, Severity: domain.SeverityRed},
		{UnitID: 102, Balance: decimal.Zero, Severity: domain.SeverityGreen},
	}
	for _, s := range statuses {
		if err := repo.Upsert(context.Background(), s); err != nil {
			t.Fatalf("seeding status: %v", err)
		}
	}
}

func TestBoardUseCase_List(t *testing.T) {
	statusRepo := mocks.NewMockStatusRepository()
	seedBoardStatuses(t, statusRepo)

	directoryRepo := mocks.NewMockDirectoryRepository()
	directoryRepo.Seed(domain.DirectoryEntry{UnitID: 101, Name: "Ana", Phone: "555-0101"})

	cache := mocks.NewMockCache()
	uc := usecase.NewBoardUseCase(statusRepo, directoryRepo, cache, zerolog.Nop())

	results, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 rows (treasury excluded), got %d", len(results))
	}
	if results[0].Status.UnitID != 101 || results[0].Contact.Name != "Ana" {
		t.Errorf("unexpected first row: %+v", results[0])
	}
	if results[1].Contact != domain.PlaceholderEntry(102) {
		t.Errorf("expected placeholder contact for unit 102, got %+v", results[1].Contact)
	}
	if cache.SetCalls != 1 {
		t.Errorf("expected the board to be cached once, got %d sets", cache.SetCalls)
	}
}

func TestBoardUseCase_List_CacheHitSkipsStore(t *testing.T) {
	statusRepo := mocks.NewMockStatusRepository()
	statusRepo.ListAllFunc = func(ctx context.Context) ([]domain.UnitStatus, error) {
		t.Fatal("store must not be read on a cache hit")
		return nil, nil
	}

	cached := []usecase.UnitResult{
		{
			Status:  domain.UnitStatus{UnitID: 101, Balance: decimal.RequireFromString("150.00"), Severity: domain.SeverityRed},
			Contact: domain.DirectoryEntry{UnitID: 101, Name: "Ana"},
		},
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshaling fixture: %v", err)
	}

	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) ([]byte, error) {
		return raw, nil
	}

	uc := usecase.NewBoardUseCase(statusRepo, mocks.NewMockDirectoryRepository(), cache, zerolog.Nop())

	results, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Contact.Name != "Ana" {
		t.Errorf("unexpected cached results: %+v", results)
	}
}

func TestBoardUseCase_List_UnreadableCacheFallsThrough(t *testing.T) {
	statusRepo := mocks.NewMockStatusRepository()
	seedBoardStatuses(t, statusRepo)

	cache := mocks.NewMockCache()
	if err := cache.Set(context.Background(), "delinquency:board", []byte("{not json"), time.Minute); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	uc := usecase.NewBoardUseCase(statusRepo, mocks.NewMockDirectoryRepository(), cache, zerolog.Nop())

	results, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected rebuild from store, got %d rows", len(results))
	}
}

func TestBoardUseCase_List_NilCache(t *testing.T) {
	statusRepo := mocks.NewMockStatusRepository()
	seedBoardStatuses(t, statusRepo)

	uc := usecase.NewBoardUseCase(statusRepo, mocks.NewMockDirectoryRepository(), nil, zerolog.Nop())

	results, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 rows, got %d", len(results))
	}
}
