package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/models/user"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateEmail is returned when an account already exists for an email.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrNotFound is returned when a record does not exist or is owned by
	// someone else. Callers cannot tell the two cases apart.
	ErrNotFound = errors.New("record not found")
)

// TransactionFilter is always ownership-conjoined: UserID is required and
// appears in every query the stores build from it. To is exclusive.
type TransactionFilter struct {
	UserID   string
	Type     string
	Category string
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

type UserStore interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.Transaction, int, error)
	UpdateTransaction(ctx context.Context, userID, id string, patch *models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error
	SummarizeTransactions(ctx context.Context, userID string, from, to *time.Time) (income, expense decimal.Decimal, err error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, t *models.Task) error
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	UpdateTask(ctx context.Context, userID, id string, patch *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}
