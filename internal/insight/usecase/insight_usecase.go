package usecase

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"hypotrophy-backend/internal/insight/domain"
	"hypotrophy-backend/internal/insight/repository"
	taskdomain "hypotrophy-backend/internal/task/domain"
	taskrepo "hypotrophy-backend/internal/task/repository"
)

type insightUsecase struct {
	insightRepo repository.InsightRepository
	taskRepo    taskrepo.TaskRepository
	generator   Generator
	busy        atomic.Bool
	now         func() time.Time
}

// NewInsightUsecase creates a new instance of insightUsecase
func NewInsightUsecase(insightRepo repository.InsightRepository, taskRepo taskrepo.TaskRepository, generator Generator) InsightUsecase {
	return &insightUsecase{
		insightRepo: insightRepo,
		taskRepo:    taskRepo,
		generator:   generator,
		now:         time.Now,
	}
}

func (u *insightUsecase) ListInsights() ([]*domain.Insight, error) {
	insights, err := u.insightRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(insights) > 0 {
		return insights, nil
	}

	tasks, err := u.taskRepo.FindAll(taskrepo.TaskFilter{})
	if err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return insights, nil
	}

	welcome := domain.Welcome(u.now())
	if err := u.insightRepo.Save(&welcome); err != nil {
		return nil, fmt.Errorf("failed to save welcome insight: %w", err)
	}
	return []*domain.Insight{&welcome}, nil
}

func (u *insightUsecase) SaveInsight(insight *domain.Insight) error {
	return u.insightRepo.Save(insight)
}

func (u *insightUsecase) RequestProgress(ctx context.Context) (*domain.Insight, error) {
	if !u.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer u.busy.Store(false)

	tasks, err := u.allTasks()
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	log.Printf("[InsightUsecase] Generating progress insight for %d tasks", len(tasks))
	insight := u.generator.GenerateProgressInsight(ctx, tasks)
	if err := u.insightRepo.Save(&insight); err != nil {
		return nil, fmt.Errorf("failed to save progress insight: %w", err)
	}
	return &insight, nil
}

func (u *insightUsecase) GenerateTaskInsight(ctx context.Context, task taskdomain.Task) (*domain.Insight, error) {
	tasks, err := u.allTasks()
	if err != nil {
		return nil, err
	}

	history := make([]taskdomain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != task.ID {
			history = append(history, t)
		}
	}

	insight := u.generator.GenerateTaskInsight(ctx, task, history)
	if err := u.insightRepo.Save(&insight); err != nil {
		return nil, fmt.Errorf("failed to save task insight: %w", err)
	}
	return &insight, nil
}

func (u *insightUsecase) Suggestions(ctx context.Context, category string) ([]string, error) {
	tasks, err := u.allTasks()
	if err != nil {
		return nil, err
	}
	return u.generator.GenerateTaskSuggestions(ctx, category, tasks), nil
}

func (u *insightUsecase) allTasks() ([]taskdomain.Task, error) {
	ptrs, err := u.taskRepo.FindAll(taskrepo.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	tasks := make([]taskdomain.Task, len(ptrs))
	for i, t := range ptrs {
		tasks[i] = *t
	}
	return tasks, nil
}
