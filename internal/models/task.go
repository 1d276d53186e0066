package models

import "time"

type Task struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Category  string     `json:"category,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title    string     `json:"title"`
	Category string     `json:"category,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

type UpdateTaskRequest struct {
	Title     *string    `json:"title,omitempty"`
	Completed *bool      `json:"completed,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
}
