package repository

import (
	"log"
	"time"

	"hypotrophy-backend/internal/insight/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormInsightRepository struct {
	db *gorm.DB
}

// NewGormInsightRepository creates a new GORM-based InsightRepository
func NewGormInsightRepository(db *gorm.DB) InsightRepository {
	if err := db.AutoMigrate(&domain.Insight{}); err != nil {
		log.Printf("[InsightRepository] Auto-migrate failed: %v", err)
	}
	return &gormInsightRepository{db: db}
}

func (r *gormInsightRepository) Save(insight *domain.Insight) error {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}
	if insight.RelevantTasks == nil {
		insight.RelevantTasks = []string{}
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(insight).Error
}

func (r *gormInsightRepository) FindAll() ([]*domain.Insight, error) {
	var insights []*domain.Insight
	err := r.db.Order("created_at DESC, id ASC").Find(&insights).Error
	return insights, err
}

func (r *gormInsightRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Insight{}).Count(&count).Error
	return count, err
}
