package repository

import (
	"errors"
	"log"
	"time"

	"hypotrophy-backend/internal/goal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GORM-based GoalRepository
func NewGormGoalRepository(db *gorm.DB) GoalRepository {
	if err := db.AutoMigrate(&domain.Goal{}); err != nil {
		log.Printf("[GoalRepository] Auto-migrate failed: %v", err)
	}
	return &gormGoalRepository{db: db}
}

func (r *gormGoalRepository) Create(goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	if goal.Tasks == nil {
		goal.Tasks = []string{}
	}
	return r.db.Create(goal).Error
}

func (r *gormGoalRepository) FindByID(id string) (*domain.Goal, error) {
	var goal domain.Goal
	if err := r.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *gormGoalRepository) FindAll() ([]*domain.Goal, error) {
	var goals []*domain.Goal
	err := r.db.Order("created_at ASC, id ASC").Find(&goals).Error
	return goals, err
}

func (r *gormGoalRepository) FindUnwarned() ([]*domain.Goal, error) {
	var goals []*domain.Goal
	err := r.db.
		Where("progress < ? AND warned_at IS NULL", domain.MaxProgress).
		Order("target_date ASC").
		Find(&goals).Error
	return goals, err
}

func (r *gormGoalRepository) Update(goal *domain.Goal) error {
	return r.db.Save(goal).Error
}

func (r *gormGoalRepository) Upsert(goal *domain.Goal) error {
	if goal.Tasks == nil {
		goal.Tasks = []string{}
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(goal).Error
}

func (r *gormGoalRepository) MarkWarned(id string, at time.Time) error {
	result := r.db.Model(&domain.Goal{}).Where("id = ?", id).Update("warned_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormGoalRepository) Delete(id string) error {
	return r.db.Delete(&domain.Goal{}, "id = ?", id).Error
}
