package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/usecase"
)

// MockMovementRepository is a mock implementation of MovementRepository.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []domain.Movement

	ListByUnitFunc func(ctx context.Context, unitID int) ([]domain.Movement, error)
	ListAllFunc    func(ctx context.Context) ([]domain.Movement, error)
	AppendFunc     func(ctx context.Context, tx usecase.Transaction, m domain.Movement) error
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

// Seed preloads the mock with movements outside of the Append path.
func (m *MockMovementRepository) Seed(movements ...domain.Movement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, movements...)
}

func (m *MockMovementRepository) ListByUnit(ctx context.Context, unitID int) ([]domain.Movement, error) {
	if m.ListByUnitFunc != nil {
		return m.ListByUnitFunc(ctx, unitID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Movement
	for _, mv := range m.movements {
		if mv.UnitID == unitID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *MockMovementRepository) ListAll(ctx context.Context) ([]domain.Movement, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Movement, len(m.movements))
	copy(out, m.movements)
	return out, nil
}

func (m *MockMovementRepository) Append(ctx context.Context, tx usecase.Transaction, mv domain.Movement) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, mv)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, mv)
	return nil
}

// Appended returns everything written through Append or Seed.
func (m *MockMovementRepository) Appended() []domain.Movement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Movement, len(m.movements))
	copy(out, m.movements)
	return out
}

// MockStatusRepository is a mock implementation of StatusRepository.
type MockStatusRepository struct {
	mu       sync.RWMutex
	statuses map[int]domain.UnitStatus

	GetByUnitFunc func(ctx context.Context, unitID int) (*domain.UnitStatus, error)
	UpsertFunc    func(ctx context.Context, status domain.UnitStatus) error
	ListAllFunc   func(ctx context.Context) ([]domain.UnitStatus, error)
}

func NewMockStatusRepository() *MockStatusRepository {
	return &MockStatusRepository{
		statuses: make(map[int]domain.UnitStatus),
	}
}

func (m *MockStatusRepository) GetByUnit(ctx context.Context, unitID int) (*domain.UnitStatus, error) {
	if m.GetByUnitFunc != nil {
		return m.GetByUnitFunc(ctx, unitID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.statuses[unitID]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *MockStatusRepository) Upsert(ctx context.Context, status domain.UnitStatus) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[status.UnitID] = status
	return nil
}

func (m *MockStatusRepository) ListAll(ctx context.Context) ([]domain.UnitStatus, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.UnitStatus, 0, len(m.statuses))
	for _, s := range m.statuses {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out, nil
}

// Stored returns the status persisted for unitID, if any.
func (m *MockStatusRepository) Stored(unitID int) (domain.UnitStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.statuses[unitID]
	return s, ok
}

// MockDirectoryRepository is a mock implementation of DirectoryRepository.
type MockDirectoryRepository struct {
	mu      sync.RWMutex
	entries map[int]domain.DirectoryEntry

	GetByUnitFunc       func(ctx context.Context, unitID int) (*domain.DirectoryEntry, error)
	MapFunc             func(ctx context.Context) (map[int]domain.DirectoryEntry, error)
	ListActiveUnitsFunc func(ctx context.Context) ([]int, error)
}

func NewMockDirectoryRepository() *MockDirectoryRepository {
	return &MockDirectoryRepository{
		entries: make(map[int]domain.DirectoryEntry),
	}
}

// Seed registers a directory entry for a unit.
func (m *MockDirectoryRepository) Seed(entries ...domain.DirectoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.entries[e.UnitID] = e
	}
}

func (m *MockDirectoryRepository) GetByUnit(ctx context.Context, unitID int) (*domain.DirectoryEntry, error) {
	if m.GetByUnitFunc != nil {
		return m.GetByUnitFunc(ctx, unitID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[unitID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *MockDirectoryRepository) Map(ctx context.Context) (map[int]domain.DirectoryEntry, error) {
	if m.MapFunc != nil {
		return m.MapFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]domain.DirectoryEntry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

func (m *MockDirectoryRepository) ListActiveUnits(ctx context.Context) ([]int, error) {
	if m.ListActiveUnitsFunc != nil {
		return m.ListActiveUnitsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	units := make([]int, 0, len(m.entries))
	for id := range m.entries {
		units = append(units, id)
	}
	sort.Ints(units)
	return units, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc          func(ctx context.Context, user *domain.User) error
	GetByNationalIDFunc func(ctx context.Context, nationalID string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.NationalID] = user
	return nil
}

func (m *MockUserRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	if m.GetByNationalIDFunc != nil {
		return m.GetByNationalIDFunc(ctx, nationalID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[nationalID]; ok {
		return u, nil
	}
	return nil, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockCache is an in-memory mock implementation of Cache. TTLs are recorded
// but never enforced.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	SetCalls    int
	DeleteCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.SetCalls++
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	m.DeleteCalls++
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		entries: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[key]; ok {
		return true, existing, nil
	}
	m.entries[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = response
	return nil
}
