package repository

import (
	"errors"

	"hypotrophy-backend/internal/task/domain"
)

// ErrNotFound is returned by targeted writes when no task has the ID
var ErrNotFound = errors.New("task not found")

// TaskFilter narrows FindAll; nil fields match everything
type TaskFilter struct {
	Category  *domain.Category
	Completed *bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, returning nil when it does not exist
	FindByID(id string) (*domain.Task, error)

	// FindAll returns matching tasks oldest first
	FindAll(filter TaskFilter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Upsert inserts the task or overwrites the stored one with the same ID
	Upsert(task *domain.Task) error

	// SetInsight writes only the AI insight column, leaving the rest of the row untouched
	SetInsight(id, content string) error

	// Delete deletes a task by ID
	Delete(id string) error
}
