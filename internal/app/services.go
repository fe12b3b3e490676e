package app

import (
	"hypotrophy-backend/internal/backup"
	goalUsecase "hypotrophy-backend/internal/goal/usecase"
	insightUsecase "hypotrophy-backend/internal/insight/usecase"
	taskUsecase "hypotrophy-backend/internal/task/usecase"
)

type Services struct {
	Tasks    taskUsecase.TaskUsecase
	Goals    goalUsecase.GoalUsecase
	Insights insightUsecase.InsightUsecase
	Backup   *backup.Service

	// Worker reacts to new tasks. The caller owns Start and Stop.
	Worker *insightUsecase.TaskInsightWorker
}

// NewServices wires the usecases over repos. New tasks are queued on the
// insight worker, which writes Biscuit's reaction back onto the task.
func NewServices(repos *Repositories, generator insightUsecase.Generator, insightWorkers int) *Services {
	tasks := taskUsecase.NewTaskUsecase(repos.Tasks)
	insights := insightUsecase.NewInsightUsecase(repos.Insights, repos.Tasks, generator)

	worker := insightUsecase.NewTaskInsightWorker(insights, tasks, insightWorkers)
	tasks.SetInsightQueue(worker)

	return &Services{
		Tasks:    tasks,
		Goals:    goalUsecase.NewGoalUsecase(repos.Goals),
		Insights: insights,
		Backup:   backup.NewService(repos.Tasks, repos.Goals, repos.Insights),
		Worker:   worker,
	}
}
