package domain

import (
	"time"

	taskdomain "hypotrophy-backend/internal/task/domain"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

// DefaultHorizon is how far out a goal's target date lands when none is given
const DefaultHorizon = 30 * 24 * time.Hour

// Goal is a longer-running objective tracked by percentage progress
type Goal struct {
	ID          string              `json:"id" gorm:"primaryKey"`
	Title       string              `json:"title" gorm:"not null"`
	Description *string             `json:"description,omitempty"`
	Category    taskdomain.Category `json:"category" gorm:"index;default:personal"`
	TargetDate  time.Time           `json:"targetDate" gorm:"index"`
	Progress    int                 `json:"progress" gorm:"default:0"`
	CreatedAt   time.Time           `json:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	Tasks       []string            `json:"tasks" gorm:"serializer:json"`
	// WarnedAt records when a deadline warning was issued, so it is issued once
	WarnedAt *time.Time `json:"warnedAt,omitempty"`
}

// SetProgress clamps p into [0,100] and keeps CompletedAt in step with it.
func (g *Goal) SetProgress(p int, now time.Time) {
	if p < MinProgress {
		p = MinProgress
	}
	if p > MaxProgress {
		p = MaxProgress
	}
	g.Progress = p

	if p >= MaxProgress {
		if g.CompletedAt == nil {
			g.CompletedAt = &now
		}
		return
	}
	g.CompletedAt = nil
}

// IsCompleted reports whether the goal reached full progress
func (g *Goal) IsCompleted() bool {
	return g.Progress >= MaxProgress
}

// DueWithin reports whether an incomplete goal's target date is before now+window.
// Overdue goals are due as well.
func (g *Goal) DueWithin(now time.Time, window time.Duration) bool {
	if g.IsCompleted() {
		return false
	}
	return g.TargetDate.Before(now.Add(window))
}
