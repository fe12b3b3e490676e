package repository

import (
	"hypotrophy-backend/internal/insight/domain"
)

// InsightRepository defines the interface for insight data access
type InsightRepository interface {
	// Save inserts the insight or overwrites the stored one with the same ID
	Save(insight *domain.Insight) error

	// FindAll returns insights newest first
	FindAll() ([]*domain.Insight, error)

	Count() (int64, error)
}
