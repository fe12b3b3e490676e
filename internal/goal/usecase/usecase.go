package usecase

import (
	"errors"
	"time"

	"hypotrophy-backend/internal/goal/domain"
)

var (
	ErrNotFound    = errors.New("goal not found")
	ErrInvalidGoal = errors.New("invalid goal")
)

// GoalUsecase defines the interface for goal business logic
type GoalUsecase interface {
	// CreateGoal creates a goal; a missing target date defaults to thirty days out
	CreateGoal(input CreateGoalInput) (*domain.Goal, error)
	ListGoals() ([]*domain.Goal, error)
	GetGoal(id string) (*domain.Goal, error)
	UpdateGoal(id string, updates GoalUpdateRequest) (*domain.Goal, error)
	// UpdateProgress clamps progress into [0,100]
	UpdateProgress(id string, progress int) (*domain.Goal, error)
	DeleteGoal(id string) error
}

// CreateGoalInput carries the fields a client may set on a new goal
type CreateGoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Tasks       []string   `json:"tasks,omitempty"`
}

// GoalUpdateRequest represents the fields that can be updated
type GoalUpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Progress    *int       `json:"progress,omitempty"`
	Tasks       []string   `json:"tasks,omitempty"`
}
