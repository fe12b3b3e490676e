// Package app assembles the storage layer shared by the HTTP server and the MCP server.
package app

import (
	"log"

	goalRepo "hypotrophy-backend/internal/goal/repository"
	insightRepo "hypotrophy-backend/internal/insight/repository"
	taskRepo "hypotrophy-backend/internal/task/repository"
	"hypotrophy-backend/pkg/config"
	"hypotrophy-backend/pkg/database"

	"gorm.io/gorm"
)

type Repositories struct {
	Tasks    taskRepo.TaskRepository
	Goals    goalRepo.GoalRepository
	Insights insightRepo.InsightRepository

	// Persistent is false when the database could not be opened.
	Persistent bool
}

// OpenRepositories connects to the configured database. When that fails the
// process keeps running on in-memory repositories and nothing survives a restart.
func OpenRepositories(cfg *config.Config) *Repositories {
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Printf("[App] Warning: database unavailable (%v), using in-memory storage", err)
		return NewMemoryRepositories()
	}
	return NewGormRepositories(db)
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tasks:      taskRepo.NewGormTaskRepository(db),
		Goals:      goalRepo.NewGormGoalRepository(db),
		Insights:   insightRepo.NewGormInsightRepository(db),
		Persistent: true,
	}
}

func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Tasks:    taskRepo.NewMemoryTaskRepository(),
		Goals:    goalRepo.NewMemoryGoalRepository(),
		Insights: insightRepo.NewMemoryInsightRepository(),
	}
}
