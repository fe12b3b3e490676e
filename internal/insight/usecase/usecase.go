package usecase

import (
	"context"
	"errors"

	"hypotrophy-backend/internal/insight/domain"
	taskdomain "hypotrophy-backend/internal/task/domain"
)

var (
	// ErrBusy means a progress analysis is already being generated
	ErrBusy = errors.New("biscuit is still typing")
	// ErrNoTasks means there is nothing to analyse yet
	ErrNoTasks = errors.New("no tasks to analyse")
)

// InsightUsecase defines the interface for Biscuit's insight feed
type InsightUsecase interface {
	// ListInsights returns the feed newest first. An empty profile gets the welcome insight.
	ListInsights() ([]*domain.Insight, error)

	SaveInsight(insight *domain.Insight) error

	// RequestProgress analyses all tasks. Only one analysis runs at a time.
	RequestProgress(ctx context.Context) (*domain.Insight, error)

	// GenerateTaskInsight reacts to a newly created task and stores the result
	GenerateTaskInsight(ctx context.Context, task taskdomain.Task) (*domain.Insight, error)

	// Suggestions returns up to three task ideas for category
	Suggestions(ctx context.Context, category string) ([]string, error)
}

// Generator produces insight content. Implementations handle their own fallbacks
// and never fail.
type Generator interface {
	GenerateTaskInsight(ctx context.Context, task taskdomain.Task, history []taskdomain.Task) domain.Insight
	GenerateProgressInsight(ctx context.Context, tasks []taskdomain.Task) domain.Insight
	GenerateTaskSuggestions(ctx context.Context, category string, history []taskdomain.Task) []string
}
