package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/storage"
	"github.com/pocketledger/pocketledger/internal/validation"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService struct {
	tasks storage.TaskStore
}

func NewTaskService(tasks storage.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validation.ValidateCreateTask(req, time.Now()); err != nil {
		return nil, err
	}

	t := &models.Task{
		UserID:   userID,
		Title:    req.Title,
		Category: req.Category,
		Deadline: req.Deadline,
	}

	if err := s.tasks.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, patch *models.UpdateTaskRequest) (*models.Task, error) {
	if err := validation.ValidateUpdateTask(patch, time.Now()); err != nil {
		return nil, err
	}

	t, err := s.tasks.UpdateTask(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if err := s.tasks.DeleteTask(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
