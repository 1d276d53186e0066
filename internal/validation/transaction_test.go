package validation

import (
	"testing"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/shopspring/decimal"
)

func validCreateRequest() *models.CreateTransactionRequest {
	amount := decimal.NewFromInt(100)
	return &models.CreateTransactionRequest{
		Type:     models.TypeExpense,
		Category: "groceries",
		Amount:   &amount,
	}
}

func TestValidateCreateTransaction_Valid(t *testing.T) {
	if err := ValidateCreateTransaction(validCreateRequest()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCreateTransaction_MissingType(t *testing.T) {
	req := validCreateRequest()
	req.Type = ""

	if err := ValidateCreateTransaction(req); err != ErrTypeRequired {
		t.Errorf("expected ErrTypeRequired, got %v", err)
	}
}

func TestValidateCreateTransaction_UnknownType(t *testing.T) {
	req := validCreateRequest()
	req.Type = "transfer"

	if err := ValidateCreateTransaction(req); err != ErrTypeInvalid {
		t.Errorf("expected ErrTypeInvalid, got %v", err)
	}
}

func TestValidateCreateTransaction_MissingAmount(t *testing.T) {
	req := validCreateRequest()
	req.Amount = nil

	if err := ValidateCreateTransaction(req); err != ErrAmountRequired {
		t.Errorf("expected ErrAmountRequired, got %v", err)
	}
}

func TestValidateCreateTransaction_ZeroAmount(t *testing.T) {
	req := validCreateRequest()
	zero := decimal.Zero
	req.Amount = &zero

	if err := ValidateCreateTransaction(req); err != ErrAmountNotPositive {
		t.Errorf("expected ErrAmountNotPositive, got %v", err)
	}
}

func TestValidateCreateTransaction_NegativeAmount(t *testing.T) {
	req := validCreateRequest()
	negative := decimal.NewFromInt(-5)
	req.Amount = &negative

	if err := ValidateCreateTransaction(req); err != ErrAmountNotPositive {
		t.Errorf("expected ErrAmountNotPositive, got %v", err)
	}
}

func TestValidateCreateTransaction_MissingCategory(t *testing.T) {
	req := validCreateRequest()
	req.Category = ""

	if err := ValidateCreateTransaction(req); err != ErrCategoryRequired {
		t.Errorf("expected ErrCategoryRequired, got %v", err)
	}
}

func TestValidateUpdateTransaction_EmptyPatch(t *testing.T) {
	if err := ValidateUpdateTransaction(&models.UpdateTransactionRequest{}); err != nil {
		t.Errorf("empty patch should be valid, got %v", err)
	}
}

func TestValidateUpdateTransaction_BadFields(t *testing.T) {
	badType := "transfer"
	if err := ValidateUpdateTransaction(&models.UpdateTransactionRequest{Type: &badType}); err != ErrTypeInvalid {
		t.Errorf("expected ErrTypeInvalid, got %v", err)
	}

	zero := decimal.Zero
	if err := ValidateUpdateTransaction(&models.UpdateTransactionRequest{Amount: &zero}); err != ErrAmountNotPositive {
		t.Errorf("expected ErrAmountNotPositive, got %v", err)
	}

	empty := ""
	if err := ValidateUpdateTransaction(&models.UpdateTransactionRequest{Category: &empty}); err != ErrCategoryRequired {
		t.Errorf("expected ErrCategoryRequired, got %v", err)
	}
}
