package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	taskdomain "hypotrophy-backend/internal/task/domain"
)

const (
	defaultWorkerCount = 2
	queueSize          = 100
	jobTimeout         = 30 * time.Second
)

// TaskInsightSetter attaches Biscuit's reaction to a stored task
type TaskInsightSetter interface {
	SetInsight(id, content string) error
}

// TaskInsightWorker generates task insights in the background so task creation
// never waits on the AI round trip.
type TaskInsightWorker struct {
	insights    InsightUsecase
	tasks       TaskInsightSetter
	jobQueue    chan taskdomain.Task
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	stopped     bool
	mu          sync.Mutex
}

// NewTaskInsightWorker creates a new worker pool
func NewTaskInsightWorker(insights InsightUsecase, tasks TaskInsightSetter, workerCount int) *TaskInsightWorker {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	return &TaskInsightWorker{
		insights:    insights,
		tasks:       tasks,
		jobQueue:    make(chan taskdomain.Task, queueSize),
		workerCount: workerCount,
	}
}

// Start starts the workers
func (w *TaskInsightWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.stopped {
		return
	}

	for i := 0; i < w.workerCount; i++ {
		w.workerWg.Add(1)
		go w.worker(i)
	}
	w.started = true
	log.Printf("[TaskInsightWorker] Started %d workers", w.workerCount)
}

// Stop drains the queue and waits for the workers to finish
func (w *TaskInsightWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.jobQueue)
	w.mu.Unlock()

	w.workerWg.Wait()
	log.Println("[TaskInsightWorker] All workers stopped")
}

// Enqueue adds a task to the queue without blocking. A full or stopped queue drops the job.
func (w *TaskInsightWorker) Enqueue(task taskdomain.Task) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	select {
	case w.jobQueue <- task:
	default:
		log.Printf("[TaskInsightWorker] Queue full, skipping insight for task %s", task.ID)
	}
}

func (w *TaskInsightWorker) worker(id int) {
	defer w.workerWg.Done()

	for task := range w.jobQueue {
		w.processJob(task)
	}

	log.Printf("[TaskInsightWorker] Worker %d stopped", id)
}

func (w *TaskInsightWorker) processJob(task taskdomain.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	insight, err := w.insights.GenerateTaskInsight(ctx, task)
	if err != nil {
		log.Printf("[TaskInsightWorker] Insight error for task %s: %v", task.ID, err)
		return
	}

	if err := w.tasks.SetInsight(task.ID, insight.Content); err != nil {
		// the task may have been deleted while the insight was generated
		log.Printf("[TaskInsightWorker] Could not attach insight to task %s: %v", task.ID, err)
		return
	}

	log.Printf("[TaskInsightWorker] Generated insight for task %s", task.ID)
}
