package service

import (
	"context"
	"testing"
	"time"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/storage"
	"github.com/pocketledger/pocketledger/internal/validation"
)

func newTaskService() *TaskService {
	return NewTaskService(storage.NewMemoryStorage())
}

func TestCreateTask(t *testing.T) {
	s := newTaskService()

	task, err := s.Create(context.Background(), "user-a", &models.CreateTaskRequest{
		Title:    "pay rent",
		Category: "home",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID == "" {
		t.Error("expected store-assigned id")
	}
	if task.UserID != "user-a" {
		t.Errorf("expected owner 'user-a', got '%s'", task.UserID)
	}
	if task.Completed {
		t.Error("new task must not be completed")
	}
}

func TestCreateTask_TitleRequired(t *testing.T) {
	s := newTaskService()

	_, err := s.Create(context.Background(), "user-a", &models.CreateTaskRequest{})
	if err != validation.ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestCreateTask_PastDeadline(t *testing.T) {
	s := newTaskService()

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err := s.Create(context.Background(), "user-a", &models.CreateTaskRequest{
		Title:    "time travel",
		Deadline: &yesterday,
	})
	if err != validation.ErrDeadlineInPast {
		t.Errorf("expected ErrDeadlineInPast, got %v", err)
	}
}

func TestUpdateTask_Complete(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "user-a", &models.CreateTaskRequest{Title: "pay rent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completed := true
	updated, err := s.Update(ctx, "user-a", task.ID, &models.UpdateTaskRequest{Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected task to be completed")
	}
}

func TestTask_OwnershipOpacity(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "user-b", &models.CreateTaskRequest{Title: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title := "hijacked"
	if _, err := s.Update(ctx, "user-a", task.ID, &models.UpdateTaskRequest{Title: &title}); err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "user-a", task.ID); err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
