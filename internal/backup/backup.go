// Package backup moves the whole profile in and out of the service using the
// document layout of the browser storage slots the web client writes.
package backup

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	goaldomain "hypotrophy-backend/internal/goal/domain"
	goalrepo "hypotrophy-backend/internal/goal/repository"
	insightdomain "hypotrophy-backend/internal/insight/domain"
	insightrepo "hypotrophy-backend/internal/insight/repository"
	taskdomain "hypotrophy-backend/internal/task/domain"
	taskrepo "hypotrophy-backend/internal/task/repository"

	"github.com/google/uuid"
)

// ErrInvalidDocument is returned when an import document fails validation
var ErrInvalidDocument = errors.New("invalid backup document")

// Document is the exported profile. The keys match the client's storage slots.
type Document struct {
	Tasks    []*taskdomain.Task       `json:"hypotrophy-tasks"`
	Goals    []*goaldomain.Goal       `json:"hypotrophy-goals"`
	Insights []*insightdomain.Insight `json:"hypotrophy-insights"`
}

// ImportResult counts what an import wrote
type ImportResult struct {
	Tasks    int `json:"tasks"`
	Goals    int `json:"goals"`
	Insights int `json:"insights"`
}

// Service exports and imports every stored entity
type Service struct {
	tasks    taskrepo.TaskRepository
	goals    goalrepo.GoalRepository
	insights insightrepo.InsightRepository
	now      func() time.Time
}

// NewService creates a backup service over the three repositories
func NewService(tasks taskrepo.TaskRepository, goals goalrepo.GoalRepository, insights insightrepo.InsightRepository) *Service {
	return &Service{
		tasks:    tasks,
		goals:    goals,
		insights: insights,
		now:      time.Now,
	}
}

// Export snapshots every task, goal and insight
func (s *Service) Export() (*Document, error) {
	tasks, err := s.tasks.FindAll(taskrepo.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export tasks: %w", err)
	}
	goals, err := s.goals.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export goals: %w", err)
	}
	insights, err := s.insights.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export insights: %w", err)
	}

	doc := &Document{Tasks: tasks, Goals: goals, Insights: insights}
	if doc.Tasks == nil {
		doc.Tasks = []*taskdomain.Task{}
	}
	if doc.Goals == nil {
		doc.Goals = []*goaldomain.Goal{}
	}
	if doc.Insights == nil {
		doc.Insights = []*insightdomain.Insight{}
	}
	return doc, nil
}

// Import upserts every entity in doc. Entities without an id get a fresh one;
// records with the same id are overwritten.
func (s *Service) Import(doc *Document) (*ImportResult, error) {
	result := &ImportResult{}
	now := s.now()

	for n, t := range doc.Tasks {
		if t == nil {
			continue
		}
		if strings.TrimSpace(t.Title) == "" {
			return result, fmt.Errorf("%w: task %q has no title", ErrInvalidDocument, t.ID)
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = documentOrder(now, n)
		}
		normalizeTask(t, now)
		if err := s.tasks.Upsert(t); err != nil {
			return result, fmt.Errorf("failed to import task %s: %w", t.ID, err)
		}
		result.Tasks++
	}

	for n, g := range doc.Goals {
		if g == nil {
			continue
		}
		if strings.TrimSpace(g.Title) == "" {
			return result, fmt.Errorf("%w: goal %q has no title", ErrInvalidDocument, g.ID)
		}
		if g.CreatedAt.IsZero() {
			g.CreatedAt = documentOrder(now, n)
		}
		normalizeGoal(g, now)
		if err := s.goals.Upsert(g); err != nil {
			return result, fmt.Errorf("failed to import goal %s: %w", g.ID, err)
		}
		result.Goals++
	}

	for _, i := range doc.Insights {
		if i == nil {
			continue
		}
		if i.ID == "" {
			i.ID = uuid.New().String()
		}
		if i.CreatedAt.IsZero() {
			i.CreatedAt = now
		}
		if err := s.insights.Save(i); err != nil {
			return result, fmt.Errorf("failed to import insight %s: %w", i.ID, err)
		}
		result.Insights++
	}

	log.Printf("[Backup] Imported %d tasks, %d goals, %d insights", result.Tasks, result.Goals, result.Insights)
	return result, nil
}

// documentOrder stamps undated records a millisecond apart so oldest-first
// listings keep the order they had in the document.
func documentOrder(now time.Time, n int) time.Time {
	return now.Add(time.Duration(n) * time.Millisecond)
}

func normalizeTask(t *taskdomain.Task, now time.Time) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.Category = taskdomain.ParseCategory(string(t.Category))
	t.Priority = taskdomain.ParsePriority(string(t.Priority))

	// completedAt follows the completed flag
	switch {
	case t.Completed && t.CompletedAt == nil:
		t.CompletedAt = &now
	case !t.Completed:
		t.CompletedAt = nil
	}
}

func normalizeGoal(g *goaldomain.Goal, now time.Time) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.TargetDate.IsZero() {
		g.TargetDate = g.CreatedAt.Add(goaldomain.DefaultHorizon)
	}
	g.Category = taskdomain.ParseCategory(string(g.Category))

	completedAt := g.CompletedAt
	g.SetProgress(g.Progress, now)
	if completedAt != nil && g.CompletedAt != nil {
		g.CompletedAt = completedAt
	}
}
