package usecase

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"hypotrophy-backend/internal/task/domain"
	"hypotrophy-backend/internal/task/repository"
	"hypotrophy-backend/pkg/classifier"
	"hypotrophy-backend/pkg/fuzzy"

	"github.com/google/uuid"
)

var completionMessages = []string{
	`🎉 Yes! You just finished %q! I'm doing happy hamster dances over here - you're absolutely crushing it!`,
	`✨ Woohoo! %q is done! You know what I love about this? Every time you complete something, you're proving to yourself that you can trust your commitments!`,
	`🚀 %q - DONE! I can practically see your confidence growing with each goal you complete. You're on fire!`,
	`💪 That's what I'm talking about! %q is finished and I'm so proud of you! You're building some serious momentum here!`,
	`🌟 Amazing work on %q! You know what this tells me? You're someone who follows through. That's such a powerful quality!`,
}

const deleteMessage = `Got it! I've removed %q from your goals. You know what? Sometimes clearing out things that aren't serving you is just as important as adding new ones. Your list, your rules! 🗑️✨`

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo     repository.TaskRepository
	insightQueue InsightQueue
	now          func() time.Time
	pick         func(n int) int
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		now:      time.Now,
		pick:     rand.Intn,
	}
}

func (u *taskUsecase) SetInsightQueue(q InsightQueue) {
	u.insightQueue = q
}

func (u *taskUsecase) CreateTask(input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: trimmed(input.Description),
		Category:    domain.ParseCategory(input.Category),
		Priority:    domain.ParsePriority(input.Priority),
		CreatedAt:   u.now(),
	}
	return u.store(task)
}

func (u *taskUsecase) QuickAdd(text string) (*domain.Task, error) {
	result, err := u.ParseInput(text)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       result.Title,
		Description: result.Description,
		Category:    result.Category,
		Priority:    result.Priority,
		CreatedAt:   u.now(),
	}
	return u.store(task)
}

func (u *taskUsecase) ParseInput(text string) (classifier.Result, error) {
	if strings.TrimSpace(text) == "" {
		return classifier.Result{}, fmt.Errorf("%w: text is required", ErrInvalidTask)
	}
	return classifier.Classify(text), nil
}

func (u *taskUsecase) store(task *domain.Task) (*domain.Task, error) {
	if err := u.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	log.Printf("[TaskUsecase] Created task %s (%s, %s)", task.ID, task.Category, task.Priority)

	if u.insightQueue != nil {
		u.insightQueue.Enqueue(*task)
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(query TaskQuery) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindAll(repository.TaskFilter{
		Category:  query.Category,
		Completed: query.Completed,
	})
	if err != nil {
		return nil, err
	}

	search := strings.TrimSpace(query.Search)
	if search == "" {
		return tasks, nil
	}

	type scored struct {
		task  *domain.Task
		score float64
	}
	var matches []scored
	for _, t := range tasks {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		if fuzzy.MatchTask(search, t.Title, desc) {
			matches = append(matches, scored{t, fuzzy.RelevanceScore(search, t.Title, desc)})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]*domain.Task, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.task)
	}
	return result, nil
}

func (u *taskUsecase) GetTask(id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(id string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTask(id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidTask)
		}
		task.Title = title
	}
	if updates.Description != nil {
		task.Description = trimmed(updates.Description)
	}
	if updates.Category != nil {
		task.Category = domain.ParseCategory(*updates.Category)
	}
	if updates.Priority != nil {
		task.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Completed != nil {
		task.SetCompleted(*updates.Completed, u.now())
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ToggleTask(id string) (*domain.Task, string, error) {
	task, err := u.GetTask(id)
	if err != nil {
		return nil, "", err
	}

	completing := !task.Completed
	task.SetCompleted(completing, u.now())
	if err := u.taskRepo.Update(task); err != nil {
		return nil, "", err
	}

	if !completing {
		return task, "", nil
	}
	msg := fmt.Sprintf(completionMessages[u.pick(len(completionMessages))], task.Title)
	return task, msg, nil
}

func (u *taskUsecase) DeleteTask(id string) (string, error) {
	task, err := u.GetTask(id)
	if err != nil {
		return "", err
	}
	if err := u.taskRepo.Delete(task.ID); err != nil {
		return "", err
	}
	log.Printf("[TaskUsecase] Deleted task %s", task.ID)
	return fmt.Sprintf(deleteMessage, task.Title), nil
}

// SetInsight touches only the insight column, so a concurrent toggle or
// delete is never overwritten by the background worker.
func (u *taskUsecase) SetInsight(id, content string) error {
	if err := u.taskRepo.SetInsight(id, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set insight on task %s: %w", id, err)
	}
	return nil
}

func (u *taskUsecase) GetStats() (*Stats, error) {
	tasks, err := u.taskRepo.FindAll(repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalTasks: len(tasks),
		Categories: []CategoryProgress{},
	}
	index := make(map[domain.Category]int)
	days := make(map[string]struct{})

	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(stats.Categories)
			index[t.Category] = i
			stats.Categories = append(stats.Categories, CategoryProgress{Category: t.Category})
		}
		stats.Categories[i].Total++

		if t.Completed {
			stats.CompletedTasks++
			stats.Categories[i].Completed++
			if t.CompletedAt != nil {
				days[t.CompletedAt.Local().Format("2006-01-02")] = struct{}{}
			}
		}
	}

	for i := range stats.Categories {
		c := &stats.Categories[i]
		c.Rate = domain.CompletionRate(c.Completed, c.Total)
	}
	stats.CompletionRate = domain.CompletionRate(stats.CompletedTasks, stats.TotalTasks)
	// counts distinct completion days, not consecutive ones
	stats.StreakDays = len(days)
	return stats, nil
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
