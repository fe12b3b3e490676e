package scheduler

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"hypotrophy-backend/internal/goal/domain"
	"hypotrophy-backend/internal/goal/repository"
	insightdomain "hypotrophy-backend/internal/insight/domain"

	"github.com/google/uuid"
)

// InsightSaver stores insights produced by the scheduler
type InsightSaver interface {
	SaveInsight(insight *insightdomain.Insight) error
}

// DeadlineScheduler warns once per goal when its target date is close or has passed
type DeadlineScheduler struct {
	goalRepo repository.GoalRepository
	insights InsightSaver
	interval time.Duration
	window   time.Duration
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewDeadlineScheduler creates a new scheduler
func NewDeadlineScheduler(
	goalRepo repository.GoalRepository,
	insights InsightSaver,
	interval, window time.Duration,
) *DeadlineScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &DeadlineScheduler{
		goalRepo: goalRepo,
		insights: insights,
		interval: interval,
		window:   window,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *DeadlineScheduler) Start() {
	log.Printf("[GoalScheduler] Starting deadline scheduler (interval: %s, window: %s)", s.interval, s.window)

	go func() {
		// Run immediately on start
		s.CheckDeadlines(s.now())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CheckDeadlines(s.now())
			case <-s.stopChan:
				log.Println("[GoalScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *DeadlineScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// CheckDeadlines issues a warning insight for every due goal not yet warned.
// It returns how many warnings were issued.
func (s *DeadlineScheduler) CheckDeadlines(now time.Time) int {
	goals, err := s.goalRepo.FindUnwarned()
	if err != nil {
		log.Printf("[GoalScheduler] Error finding goals: %v", err)
		return 0
	}

	issued := 0
	for _, goal := range goals {
		if !goal.DueWithin(now, s.window) {
			// sorted by target date, nothing later is due either
			break
		}

		insight := WarningInsight(goal, now)
		if err := s.insights.SaveInsight(insight); err != nil {
			log.Printf("[GoalScheduler] Error saving warning for goal %s: %v", goal.ID, err)
			continue
		}

		if err := s.goalRepo.MarkWarned(goal.ID, now); err != nil {
			log.Printf("[GoalScheduler] Error marking goal %s as warned: %v", goal.ID, err)
			continue
		}
		issued++
	}

	if issued > 0 {
		log.Printf("[GoalScheduler] Issued %d deadline warnings", issued)
	}
	return issued
}

// WarningInsight builds Biscuit's heads-up for a goal nearing or past its target date
func WarningInsight(goal *domain.Goal, now time.Time) *insightdomain.Insight {
	var content string
	remaining := goal.TargetDate.Sub(now)
	if remaining <= 0 {
		content = fmt.Sprintf(
			"Hey, %q was due on %s and you're at %d%%. No stress at all! Want to pick a new date that feels doable, or break off one small piece to finish this week?",
			goal.Title, goal.TargetDate.Format("Jan 2"), goal.Progress)
	} else {
		days := int(math.Ceil(remaining.Hours() / 24))
		content = fmt.Sprintf(
			"Heads up! %q is due in %d %s and you're at %d%%. You've got this, let's pick the one next step that moves the needle most and do it today!",
			goal.Title, days, plural(days, "day", "days"), goal.Progress)
	}

	category := string(goal.Category)
	return &insightdomain.Insight{
		ID:            uuid.New().String(),
		Type:          insightdomain.InsightTypeWarning,
		Title:         "Goal Deadline Approaching",
		Content:       content,
		Category:      &category,
		CreatedAt:     now,
		RelevantTasks: append([]string{}, goal.Tasks...),
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
