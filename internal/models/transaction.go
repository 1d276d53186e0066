package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single ledger entry. UserID is always assigned
// server-side from the verified token, never from a request body.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateTransactionRequest struct {
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date,omitempty"`
	Description string           `json:"description,omitempty"`
}

// UpdateTransactionRequest is a whitelisted patch: only the named fields
// can be changed, and only when present. The owner is not representable.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type ListTransactionsResponse struct {
	Total        int            `json:"total"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"totalPages"`
	Transactions []*Transaction `json:"transactions"`
}

// Summary aggregates a user's full (optionally month-windowed) history
// server-side, so pagination never under-counts the dashboard totals.
type Summary struct {
	TotalIncome  decimal.Decimal  `json:"totalIncome"`
	TotalExpense decimal.Decimal  `json:"totalExpense"`
	Savings      decimal.Decimal  `json:"savings"`
	SavingsRate  *decimal.Decimal `json:"savingsRate,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
