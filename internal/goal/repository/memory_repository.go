package repository

import (
	"sort"
	"sync"
	"time"

	"hypotrophy-backend/internal/goal/domain"

	"github.com/google/uuid"
)

// memoryGoalRepository lists goals created at the same instant in insertion order
type memoryGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]domain.Goal
	seq   map[string]uint64
	next  uint64
}

// NewMemoryGoalRepository creates an empty in-memory GoalRepository
func NewMemoryGoalRepository() GoalRepository {
	return &memoryGoalRepository{
		goals: make(map[string]domain.Goal),
		seq:   make(map[string]uint64),
	}
}

func (r *memoryGoalRepository) Create(goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	if goal.Tasks == nil {
		goal.Tasks = []string{}
	}
	return r.Upsert(goal)
}

func (r *memoryGoalRepository) FindByID(id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[id]
	if !ok {
		return nil, nil
	}
	return clone(goal), nil
}

func (r *memoryGoalRepository) FindAll() ([]*domain.Goal, error) {
	goals := r.collect(func(domain.Goal) bool { return true })

	r.mu.RLock()
	defer r.mu.RUnlock()
	sort.Slice(goals, func(i, j int) bool {
		if !goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		}
		return r.seq[goals[i].ID] < r.seq[goals[j].ID]
	})
	return goals, nil
}

func (r *memoryGoalRepository) FindUnwarned() ([]*domain.Goal, error) {
	goals := r.collect(func(g domain.Goal) bool {
		return !g.IsCompleted() && g.WarnedAt == nil
	})
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	return goals, nil
}

func (r *memoryGoalRepository) Update(goal *domain.Goal) error {
	return r.Upsert(goal)
}

func (r *memoryGoalRepository) Upsert(goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seq[goal.ID]; !ok {
		r.next++
		r.seq[goal.ID] = r.next
	}
	r.goals[goal.ID] = *clone(*goal)
	return nil
}

func (r *memoryGoalRepository) MarkWarned(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal, ok := r.goals[id]
	if !ok {
		return ErrNotFound
	}
	goal.WarnedAt = &at
	r.goals[id] = goal
	return nil
}

func (r *memoryGoalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.goals, id)
	delete(r.seq, id)
	return nil
}

func (r *memoryGoalRepository) collect(keep func(domain.Goal) bool) []*domain.Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*domain.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if keep(g) {
			goals = append(goals, clone(g))
		}
	}
	return goals
}

// clone copies the task id slice so callers cannot mutate stored state
func clone(g domain.Goal) *domain.Goal {
	g.Tasks = append([]string{}, g.Tasks...)
	return &g
}
