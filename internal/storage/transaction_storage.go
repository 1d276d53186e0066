package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pocketledger/pocketledger/internal/database"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionStorage struct {
	db *database.DBManager
}

func NewTransactionStorage(db *database.DBManager) *TransactionStorage {
	return &TransactionStorage{db: db}
}

func (s *TransactionStorage) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	t.ID = uuid.New().String()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, user_id, type, category, amount, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Write().Exec(ctx, query,
		t.ID,
		t.UserID,
		t.Type,
		t.Category,
		t.Amount,
		t.Date,
		t.Description,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// buildFilter returns the WHERE clause and its arguments. The owner id is
// always the first condition; everything else is conjoined to it.
func buildFilter(filter TransactionFilter) (string, []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{filter.UserID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("date < $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

func (s *TransactionStorage) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.Transaction, int, error) {
	where, args := buildFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions WHERE " + where
	if err := s.db.Read().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, user_id, type, category, amount, date, COALESCE(description, ''), created_at, updated_at
		FROM transactions
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := s.db.Read().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Type,
			&t.Category,
			&t.Amount,
			&t.Date,
			&t.Description,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}
		transactions = append(transactions, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return transactions, total, nil
}

func (s *TransactionStorage) UpdateTransaction(ctx context.Context, userID, id string, patch *models.UpdateTransactionRequest) (*models.Transaction, error) {
	sets := []string{}
	args := []interface{}{id, userID}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Type != nil {
		appendSet("type", *patch.Type)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.Amount != nil {
		appendSet("amount", *patch.Amount)
	}
	if patch.Date != nil {
		appendSet("date", *patch.Date)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE transactions
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, type, category, amount, date, COALESCE(description, ''), created_at, updated_at
	`, strings.Join(sets, ", "))

	var t models.Transaction
	err := s.db.Write().QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.UserID,
		&t.Type,
		&t.Category,
		&t.Amount,
		&t.Date,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &t, nil
}

func (s *TransactionStorage) DeleteTransaction(ctx context.Context, userID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	cmdTag, err := s.db.Write().Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *TransactionStorage) SummarizeTransactions(ctx context.Context, userID string, from, to *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	where, args := buildFilter(TransactionFilter{UserID: userID, From: from, To: to})

	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE %s
	`, where)

	var income, expense decimal.Decimal
	if err := s.db.Read().QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	return income, expense, nil
}
