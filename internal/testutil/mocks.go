package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/storage"
)

// MockUserRepository is an in-memory repository.UserRepository.
type MockUserRepository struct {
	mu     sync.Mutex
	Users  map[string]*domain.User
	nextID int64
	// GetErr, when set, is returned by every lookup.
	GetErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(_ context.Context, user *domain.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[user.Username]; ok {
		return 0, fmt.Errorf("user %q: %w", user.Username, repository.ErrDuplicate)
	}
	m.nextID++
	now := time.Now().UTC()
	user.ID = m.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	m.Users[user.Username] = &stored
	return user.ID, nil
}

func (m *MockUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if user, ok := m.Users[username]; ok {
		u := *user
		return &u, nil
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (m *MockUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, user := range m.Users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

// MockEntryRepository is an in-memory repository.EntryRepository that returns
// entries in insertion order.
type MockEntryRepository struct {
	mu        sync.Mutex
	Entries   []domain.Entry
	ListCalls int
	ListErr   error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(_ context.Context, entry *domain.Entry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = int64(len(m.Entries) + 1)
	entry.CreatedAt = time.Now().UTC()
	m.Entries = append(m.Entries, *entry)
	return entry.ID, nil
}

func (m *MockEntryRepository) ListByUser(_ context.Context, userID int64) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddEntry seeds an entry dated on the given ISO day.
func (m *MockEntryRepository) AddEntry(userID int64, typ domain.EntryType, category string, amount string, day string) {
	date, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		panic(err)
	}
	_, _ = m.Create(context.Background(), &domain.Entry{
		UserID:   userID,
		Type:     typ,
		Category: category,
		Amount:   MustDecimal(amount),
		Date:     date,
	})
}

// MockBudgetRepository is an in-memory repository.BudgetRepository keyed like the
// sqlite unique index.
type MockBudgetRepository struct {
	mu      sync.Mutex
	Budgets []domain.Budget
}

func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{}
}

func (m *MockBudgetRepository) Upsert(_ context.Context, budget *domain.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for i := range m.Budgets {
		b := &m.Budgets[i]
		if b.UserID == budget.UserID && b.Category == budget.Category && b.Month == budget.Month && b.Year == budget.Year {
			b.Amount = budget.Amount
			b.UpdatedAt = now
			*budget = *b
			return nil
		}
	}
	budget.ID = int64(len(m.Budgets) + 1)
	budget.CreatedAt = now
	budget.UpdatedAt = now
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetRepository) ListByPeriod(_ context.Context, userID int64, period domain.Period) ([]domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Budget
	for _, b := range m.Budgets {
		if b.UserID == userID && b.Year == period.Year && b.Month == period.Month {
			out = append(out, b)
		}
	}
	return out, nil
}

// AddBudget seeds a budget.
func (m *MockBudgetRepository) AddBudget(userID int64, category, amount string, year, month int) {
	_ = m.Upsert(context.Background(), &domain.Budget{
		UserID:   userID,
		Category: category,
		Amount:   MustDecimal(amount),
		Year:     year,
		Month:    month,
	})
}

// MemoryStorage is an in-memory storage.Service.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	PutErr  error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: make(map[string][]byte)}
}

func (s *MemoryStorage) PutObject(_ context.Context, key string, body io.Reader, _ string) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = buf.Bytes()
	return nil
}

func (s *MemoryStorage) ListObjects(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []storage.ObjectInfo
	for key, body := range s.Objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, Size: int64(len(body))})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *MemoryStorage) PresignGet(_ context.Context, key string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s?expires=%d", key, int(expires.Seconds())), nil
}
