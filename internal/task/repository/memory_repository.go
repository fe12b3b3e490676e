package repository

import (
	"sort"
	"sync"
	"time"

	"hypotrophy-backend/internal/task/domain"

	"github.com/google/uuid"
)

// memoryTaskRepository keeps tasks in process memory. Used when no database is reachable.
// Tasks created at the same instant list in insertion order.
type memoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	seq   map[string]uint64
	next  uint64
}

// NewMemoryTaskRepository creates an empty in-memory TaskRepository
func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{
		tasks: make(map[string]domain.Task),
		seq:   make(map[string]uint64),
	}
}

// put stores task; the caller holds the write lock
func (r *memoryTaskRepository) put(task domain.Task) {
	if _, ok := r.seq[task.ID]; !ok {
		r.next++
		r.seq[task.ID] = r.next
	}
	r.tasks[task.ID] = task
}

func (r *memoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	r.put(*task)
	return nil
}

func (r *memoryTaskRepository) FindByID(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *memoryTaskRepository) FindAll(filter TaskFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		task := t
		tasks = append(tasks, &task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return r.seq[tasks[i].ID] < r.seq[tasks[j].ID]
	})
	return tasks, nil
}

func (r *memoryTaskRepository) Update(task *domain.Task) error {
	return r.Upsert(task)
}

func (r *memoryTaskRepository) Upsert(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(*task)
	return nil
}

func (r *memoryTaskRepository) SetInsight(id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.AIInsight = &content
	r.tasks[id] = task
	return nil
}

func (r *memoryTaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	delete(r.seq, id)
	return nil
}
