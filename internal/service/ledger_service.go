package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pocketledger/pocketledger/internal/cache"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/storage"
	"github.com/pocketledger/pocketledger/internal/validation"
	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type ListOptions struct {
	Page     int
	Limit    int
	Type     string
	Category string
	Month    int
	Year     int
}

type SummaryOptions struct {
	Month int
	Year  int
}

type LedgerService struct {
	transactions storage.TransactionStore
	summaryCache *cache.Cache
}

// NewLedgerService builds the ledger. summaryCache may be nil; summaries
// then always hit the store.
func NewLedgerService(transactions storage.TransactionStore, summaryCache *cache.Cache) *LedgerService {
	return &LedgerService{
		transactions: transactions,
		summaryCache: summaryCache,
	}
}

// Create persists a transaction for userID. The owner always comes from
// the verified token; the request type cannot carry one.
func (s *LedgerService) Create(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validation.ValidateCreateTransaction(req); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	t := &models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      *req.Amount,
		Date:        date,
		Description: req.Description,
	}

	if err := s.transactions.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.invalidateSummary(ctx, userID)
	return t, nil
}

func (s *LedgerService) List(ctx context.Context, userID string, opts ListOptions) (*models.ListTransactionsResponse, error) {
	page := opts.Page
	if page < 1 {
		page = defaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := storage.TransactionFilter{
		UserID:   userID,
		Type:     opts.Type,
		Category: opts.Category,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}
	if from, to, ok := monthRange(opts.Year, opts.Month); ok {
		filter.From = &from
		filter.To = &to
	}

	transactions, total, err := s.transactions.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	return &models.ListTransactionsResponse{
		Total:        total,
		Page:         page,
		TotalPages:   (total + limit - 1) / limit,
		Transactions: transactions,
	}, nil
}

func (s *LedgerService) Update(ctx context.Context, userID, id string, patch *models.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := validation.ValidateUpdateTransaction(patch); err != nil {
		return nil, err
	}

	t, err := s.transactions.UpdateTransaction(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.invalidateSummary(ctx, userID)
	return t, nil
}

func (s *LedgerService) Delete(ctx context.Context, userID, id string) error {
	if err := s.transactions.DeleteTransaction(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.invalidateSummary(ctx, userID)
	return nil
}

// Summary aggregates over the user's whole history (or one calendar
// month), not just a page. Only the unwindowed result is cached.
func (s *LedgerService) Summary(ctx context.Context, userID string, opts SummaryOptions) (*models.Summary, error) {
	var from, to *time.Time
	windowed := false
	if f, t, ok := monthRange(opts.Year, opts.Month); ok {
		from = &f
		to = &t
		windowed = true
	}

	if !windowed && s.summaryCache != nil {
		var cached models.Summary
		if found, err := s.summaryCache.GetJSON(ctx, summaryKey(userID), &cached); err == nil && found {
			return &cached, nil
		}
	}

	income, expense, err := s.transactions.SummarizeTransactions(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	summary := buildSummary(income, expense)

	if !windowed && s.summaryCache != nil {
		_ = s.summaryCache.SetJSON(ctx, summaryKey(userID), summary)
	}

	return summary, nil
}

func buildSummary(income, expense decimal.Decimal) *models.Summary {
	savings := income.Sub(expense)

	summary := &models.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Savings:      savings,
	}

	if income.GreaterThan(decimal.Zero) {
		rate := savings.Div(income).Mul(decimal.NewFromInt(100)).Round(2)
		hundred := decimal.NewFromInt(100)
		if rate.GreaterThan(hundred) {
			rate = hundred
		}
		summary.SavingsRate = &rate
	}

	return summary
}

// monthRange maps a calendar month to the half-open window
// [first instant of month, first instant of next month).
func monthRange(year, month int) (time.Time, time.Time, bool) {
	if year <= 0 || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, false
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), true
}

func summaryKey(userID string) string {
	return "summary:" + userID
}

func (s *LedgerService) invalidateSummary(ctx context.Context, userID string) {
	if s.summaryCache != nil {
		_ = s.summaryCache.Delete(ctx, summaryKey(userID))
	}
}
