package usecase

import (
	"fmt"
	"log"
	"strings"
	"time"

	"hypotrophy-backend/internal/goal/domain"
	"hypotrophy-backend/internal/goal/repository"
	taskdomain "hypotrophy-backend/internal/task/domain"

	"github.com/google/uuid"
)

type goalUsecase struct {
	goalRepo repository.GoalRepository
	now      func() time.Time
}

// NewGoalUsecase creates a new instance of goalUsecase
func NewGoalUsecase(goalRepo repository.GoalRepository) GoalUsecase {
	return &goalUsecase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

func (u *goalUsecase) CreateGoal(input CreateGoalInput) (*domain.Goal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}

	now := u.now()
	target := now.Add(domain.DefaultHorizon)
	if input.TargetDate != nil && !input.TargetDate.IsZero() {
		target = *input.TargetDate
	}

	goal := &domain.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: trimmed(input.Description),
		Category:    taskdomain.ParseCategory(input.Category),
		TargetDate:  target,
		CreatedAt:   now,
		Tasks:       append([]string{}, input.Tasks...),
	}
	if err := u.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	log.Printf("[GoalUsecase] Created goal %s due %s", goal.ID, goal.TargetDate.Format("2006-01-02"))
	return goal, nil
}

func (u *goalUsecase) ListGoals() ([]*domain.Goal, error) {
	return u.goalRepo.FindAll()
}

func (u *goalUsecase) GetGoal(id string) (*domain.Goal, error) {
	goal, err := u.goalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrNotFound
	}
	return goal, nil
}

func (u *goalUsecase) UpdateGoal(id string, updates GoalUpdateRequest) (*domain.Goal, error) {
	goal, err := u.GetGoal(id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidGoal)
		}
		goal.Title = title
	}
	if updates.Description != nil {
		goal.Description = trimmed(updates.Description)
	}
	if updates.Category != nil {
		goal.Category = taskdomain.ParseCategory(*updates.Category)
	}
	if updates.TargetDate != nil && !updates.TargetDate.Equal(goal.TargetDate) {
		goal.TargetDate = *updates.TargetDate
		// a moved deadline deserves a fresh warning
		goal.WarnedAt = nil
	}
	if updates.Progress != nil {
		goal.SetProgress(*updates.Progress, u.now())
	}
	if updates.Tasks != nil {
		goal.Tasks = append([]string{}, updates.Tasks...)
	}

	if err := u.goalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (u *goalUsecase) UpdateProgress(id string, progress int) (*domain.Goal, error) {
	return u.UpdateGoal(id, GoalUpdateRequest{Progress: &progress})
}

func (u *goalUsecase) DeleteGoal(id string) error {
	goal, err := u.GetGoal(id)
	if err != nil {
		return err
	}
	return u.goalRepo.Delete(goal.ID)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
