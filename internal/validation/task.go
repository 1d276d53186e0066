package validation

import (
	"errors"
	"time"

	"github.com/pocketledger/pocketledger/internal/models"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrDeadlineInPast = errors.New("deadline cannot be in the past")
)

func ValidateCreateTask(req *models.CreateTaskRequest, now time.Time) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	return validateDeadline(req.Deadline, now)
}

func ValidateUpdateTask(req *models.UpdateTaskRequest, now time.Time) error {
	if req.Title != nil && *req.Title == "" {
		return ErrTitleRequired
	}
	return validateDeadline(req.Deadline, now)
}

// A deadline anywhere on today's calendar day is accepted.
func validateDeadline(deadline *time.Time, now time.Time) error {
	if deadline == nil {
		return nil
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deadline.Before(startOfDay) {
		return ErrDeadlineInPast
	}
	return nil
}
