package validation

import (
	"errors"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrTypeRequired      = errors.New("type is required")
	ErrTypeInvalid       = errors.New("type must be 'income' or 'expense'")
	ErrCategoryRequired  = errors.New("category is required")
	ErrAmountRequired    = errors.New("amount is required")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

func ValidateTransactionType(transactionType string) error {
	if transactionType == "" {
		return ErrTypeRequired
	}
	if transactionType != models.TypeIncome && transactionType != models.TypeExpense {
		return ErrTypeInvalid
	}
	return nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	return nil
}

func ValidateCreateTransaction(req *models.CreateTransactionRequest) error {
	if err := ValidateTransactionType(req.Type); err != nil {
		return err
	}
	if req.Category == "" {
		return ErrCategoryRequired
	}
	if req.Amount == nil {
		return ErrAmountRequired
	}
	return ValidateAmount(*req.Amount)
}

func ValidateUpdateTransaction(req *models.UpdateTransactionRequest) error {
	if req.Type != nil {
		if err := ValidateTransactionType(*req.Type); err != nil {
			return err
		}
	}
	if req.Category != nil && *req.Category == "" {
		return ErrCategoryRequired
	}
	if req.Amount != nil {
		if err := ValidateAmount(*req.Amount); err != nil {
			return err
		}
	}
	return nil
}
