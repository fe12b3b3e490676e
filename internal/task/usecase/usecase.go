package usecase

import (
	"errors"

	"hypotrophy-backend/internal/task/domain"
	"hypotrophy-backend/pkg/classifier"
)

var (
	ErrNotFound    = errors.New("task not found")
	ErrInvalidTask = errors.New("invalid task")
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a task from explicit fields
	CreateTask(input CreateTaskInput) (*domain.Task, error)

	// QuickAdd classifies free text and creates the resulting task
	QuickAdd(text string) (*domain.Task, error)

	// ParseInput previews what QuickAdd would create without storing anything
	ParseInput(text string) (classifier.Result, error)

	// ListTasks returns tasks oldest first, or by relevance when a search query is given
	ListTasks(query TaskQuery) ([]*domain.Task, error)

	GetTask(id string) (*domain.Task, error)

	// UpdateTask applies a partial update
	UpdateTask(id string, updates TaskUpdateRequest) (*domain.Task, error)

	// ToggleTask flips completion. The message is Biscuit's celebration when the task
	// was just completed and empty otherwise.
	ToggleTask(id string) (*domain.Task, string, error)

	// DeleteTask removes the task and returns Biscuit's farewell line
	DeleteTask(id string) (string, error)

	// SetInsight stores Biscuit's reaction on the task
	SetInsight(id, content string) error

	// GetStats computes the progress dashboard numbers
	GetStats() (*Stats, error)

	// SetInsightQueue sets where new tasks are sent for an AI reaction
	SetInsightQueue(q InsightQueue)
}

// InsightQueue receives newly created tasks. Enqueue must not block.
type InsightQueue interface {
	Enqueue(task domain.Task)
}

// CreateTaskInput carries the fields a client may set on a new task
type CreateTaskInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskQuery filters ListTasks; zero values match everything
type TaskQuery struct {
	Category  *domain.Category
	Completed *bool
	Search    string
}

// CategoryProgress is the completion record of one category on the dashboard
type CategoryProgress struct {
	Category  domain.Category `json:"category"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Rate      int             `json:"rate"`
}

// Stats is the progress dashboard summary
type Stats struct {
	TotalTasks     int                `json:"totalTasks"`
	CompletedTasks int                `json:"completedTasks"`
	CompletionRate int                `json:"completionRate"`
	StreakDays     int                `json:"streakDays"`
	Categories     []CategoryProgress `json:"categories"`
}
