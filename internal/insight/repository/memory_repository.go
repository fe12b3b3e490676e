package repository

import (
	"sort"
	"sync"
	"time"

	"hypotrophy-backend/internal/insight/domain"

	"github.com/google/uuid"
)

type memoryInsightRepository struct {
	mu       sync.RWMutex
	insights map[string]domain.Insight
}

// NewMemoryInsightRepository creates an empty in-memory InsightRepository
func NewMemoryInsightRepository() InsightRepository {
	return &memoryInsightRepository{insights: make(map[string]domain.Insight)}
}

func (r *memoryInsightRepository) Save(insight *domain.Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}
	stored := *insight
	stored.RelevantTasks = append([]string{}, insight.RelevantTasks...)
	r.insights[insight.ID] = stored
	return nil
}

func (r *memoryInsightRepository) FindAll() ([]*domain.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insights := make([]*domain.Insight, 0, len(r.insights))
	for _, i := range r.insights {
		insight := i
		insights = append(insights, &insight)
	}
	sort.Slice(insights, func(i, j int) bool {
		if !insights[i].CreatedAt.Equal(insights[j].CreatedAt) {
			return insights[i].CreatedAt.After(insights[j].CreatedAt)
		}
		return insights[i].ID < insights[j].ID
	})
	return insights, nil
}

func (r *memoryInsightRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.insights)), nil
}
