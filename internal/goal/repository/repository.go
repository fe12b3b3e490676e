package repository

import (
	"errors"
	"time"

	"hypotrophy-backend/internal/goal/domain"
)

// ErrNotFound is returned by targeted writes when no goal has the ID
var ErrNotFound = errors.New("goal not found")

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	Create(goal *domain.Goal) error

	// FindByID returns nil when the goal does not exist
	FindByID(id string) (*domain.Goal, error)

	// FindAll returns every goal oldest first
	FindAll() ([]*domain.Goal, error)

	// FindUnwarned returns incomplete goals without a deadline warning, soonest target first
	FindUnwarned() ([]*domain.Goal, error)

	Update(goal *domain.Goal) error

	// Upsert inserts the goal or overwrites the stored one with the same ID
	Upsert(goal *domain.Goal) error

	// MarkWarned sets only warned_at, leaving progress and the rest of the row as stored
	MarkWarned(id string, at time.Time) error

	Delete(id string) error
}
