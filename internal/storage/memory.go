package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/models/user"
	"github.com/shopspring/decimal"
)

// MemoryStorage implements UserStore, TransactionStore and TaskStore in
// process memory. It backs the handler and service tests.
type MemoryStorage struct {
	mu           sync.RWMutex
	users        map[string]*user.User
	transactions map[string]*models.Transaction
	tasks        map[string]*models.Task
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:        make(map[string]*user.User),
		transactions: make(map[string]*models.Transaction),
		tasks:        make(map[string]*models.Task),
	}
}

func (s *MemoryStorage) CreateUser(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	u.ID = uuid.New().String()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	s.users[u.ID] = &stored
	return nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[id]
	if !exists {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func (s *MemoryStorage) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.New().String()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := *t
	s.transactions[t.ID] = &stored
	return nil
}

func matchesFilter(t *models.Transaction, filter TransactionFilter) bool {
	if t.UserID != filter.UserID {
		return false
	}
	if filter.Type != "" && t.Type != filter.Type {
		return false
	}
	if filter.Category != "" && t.Category != filter.Category {
		return false
	}
	if filter.From != nil && t.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !t.Date.Before(*filter.To) {
		return false
	}
	return true
}

func (s *MemoryStorage) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.Transaction, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Transaction
	for _, t := range s.transactions {
		if matchesFilter(t, filter) {
			found := *t
			matched = append(matched, &found)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date.Equal(matched[j].Date) {
			return strings.Compare(matched[i].ID, matched[j].ID) < 0
		}
		return matched[i].Date.After(matched[j].Date)
	})

	total := len(matched)

	if filter.Offset >= total {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

func (s *MemoryStorage) UpdateTransaction(ctx context.Context, userID, id string, patch *models.UpdateTransactionRequest) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.transactions[id]
	if !exists || t.UserID != userID {
		return nil, ErrNotFound
	}

	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	t.UpdatedAt = time.Now()

	updated := *t
	return &updated, nil
}

func (s *MemoryStorage) DeleteTransaction(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.transactions[id]
	if !exists || t.UserID != userID {
		return ErrNotFound
	}

	delete(s.transactions, id)
	return nil
}

func (s *MemoryStorage) SummarizeTransactions(ctx context.Context, userID string, from, to *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter := TransactionFilter{UserID: userID, From: from, To: to}
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range s.transactions {
		if !matchesFilter(t, filter) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return income, expense, nil
}

func (s *MemoryStorage) CreateTask(ctx context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.New().String()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := *t
	s.tasks[t.ID] = &stored
	return nil
}

func (s *MemoryStorage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			found := *t
			tasks = append(tasks, &found)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (s *MemoryStorage) UpdateTask(ctx context.Context, userID, id string, patch *models.UpdateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tasks[id]
	if !exists || t.UserID != userID {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Deadline != nil {
		t.Deadline = patch.Deadline
	}
	t.UpdatedAt = time.Now()

	updated := *t
	return &updated, nil
}

func (s *MemoryStorage) DeleteTask(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tasks[id]
	if !exists || t.UserID != userID {
		return ErrNotFound
	}

	delete(s.tasks, id)
	return nil
}
