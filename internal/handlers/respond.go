package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/service"
	"github.com/pocketledger/pocketledger/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Message: message})
}

var validationErrors = []error{
	service.ErrNameRequired,
	service.ErrEmailRequired,
	service.ErrPasswordRequired,
	service.ErrPasswordTooShort,
	validation.ErrTypeRequired,
	validation.ErrTypeInvalid,
	validation.ErrCategoryRequired,
	validation.ErrAmountRequired,
	validation.ErrAmountNotPositive,
	validation.ErrTitleRequired,
	validation.ErrDeadlineInPast,
}

func isValidationError(err error) bool {
	for _, known := range validationErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
