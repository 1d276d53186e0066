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
)

type TaskStorage struct {
	db *database.DBManager
}

func NewTaskStorage(db *database.DBManager) *TaskStorage {
	return &TaskStorage{db: db}
}

func (s *TaskStorage) CreateTask(ctx context.Context, t *models.Task) error {
	t.ID = uuid.New().String()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO tasks (id, user_id, title, completed, category, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Write().Exec(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Completed,
		t.Category,
		t.Deadline,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (s *TaskStorage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, completed, COALESCE(category, ''), deadline, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Read().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var t models.Task
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.Completed,
			&t.Category,
			&t.Deadline,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		tasks = append(tasks, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func (s *TaskStorage) UpdateTask(ctx context.Context, userID, id string, patch *models.UpdateTaskRequest) (*models.Task, error) {
	sets := []string{}
	args := []interface{}{id, userID}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Completed != nil {
		appendSet("completed", *patch.Completed)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.Deadline != nil {
		appendSet("deadline", *patch.Deadline)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, completed, COALESCE(category, ''), deadline, created_at, updated_at
	`, strings.Join(sets, ", "))

	var t models.Task
	err := s.db.Write().QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Completed,
		&t.Category,
		&t.Deadline,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &t, nil
}

func (s *TaskStorage) DeleteTask(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	cmdTag, err := s.db.Write().Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
